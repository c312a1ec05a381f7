package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/resolve"
)

func TestHostFallsBackOnUnreachableServer(t *testing.T) {
	r := resolve.New("127.0.0.1:1")
	assert.Equal(t, "play.example.com", r.Host("play.example.com"))
}
