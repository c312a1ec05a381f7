// Package resolve turns a client-supplied, suffix-stripped server address
// into the host the proxy should actually dial, consulting a
// `_minecraft._tcp` SRV record first.
package resolve

import (
	"fmt"
	"time"

	"github.com/miekg/dns"
)

// Resolver looks up the Minecraft SRV record for a hostname against a
// fixed upstream DNS server.
type Resolver struct {
	dnsServer string
	client    *dns.Client
}

// New builds a Resolver that queries dnsServer (host:port, e.g.
// "1.1.1.1:53") for SRV records.
func New(dnsServer string) *Resolver {
	return &Resolver{
		dnsServer: dnsServer,
		client:    &dns.Client{Timeout: 2 * time.Second},
	}
}

// Host resolves stripped to the address the proxy should dial. A missing
// SRV record, an empty answer, or any lookup error all fall back to
// stripped itself -- SRV resolution is a convenience, not a requirement.
func (r *Resolver) Host(stripped string) string {
	name := fmt.Sprintf("_minecraft._tcp.%s.", stripped)

	msg := new(dns.Msg)
	msg.SetQuestion(name, dns.TypeSRV)
	msg.RecursionDesired = true

	reply, _, err := r.client.Exchange(msg, r.dnsServer)
	if err != nil || reply == nil {
		return stripped
	}

	for _, rr := range reply.Answer {
		if srv, ok := rr.(*dns.SRV); ok {
			return trimTrailingDot(srv.Target)
		}
	}
	return stripped
}

func trimTrailingDot(host string) string {
	if len(host) > 0 && host[len(host)-1] == '.' {
		return host[:len(host)-1]
	}
	return host
}
