package handler

import (
	"context"
	"crypto/rand"

	"github.com/zegevlier/mc-proxy-v2/pkg/config"
	"github.com/zegevlier/mc-proxy-v2/pkg/proto/packet"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/connstate"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/plugin"
	"github.com/zegevlier/mc-proxy-v2/pkg/proxy/sessionjoin"
)

func init() {
	registerEdit(packet.EncryptionRequest, editEncryptionRequest)
	registerPostSend(packet.EncryptionRequest, postSendEncryptionRequest)
}

func editEncryptionRequest(ctx context.Context, p packet.Packet, state *connstate.Snapshot, plugins *plugin.Registry, cfg *config.Config) ([]packet.Emission, error) {
	er := p.(*packet.EncryptionRequestPacket)

	var secret [16]byte
	if _, err := rand.Read(secret[:]); err != nil {
		return nil, err
	}
	state.SecretKey = secret

	hash := sessionjoin.ServerHash(er.ServerID, secret[:], er.PublicKey)

	joinClient := sessionjoin.NewClient()
	if err := joinClient.Join(state.AccessToken, state.PlayerUUID, hash); err != nil {
		return nil, err
	}

	pub, err := sessionjoin.ParsePublicKey(er.PublicKey)
	if err != nil {
		return nil, err
	}

	encryptedSecret, err := sessionjoin.Encrypt(pub, secret[:])
	if err != nil {
		return nil, err
	}
	encryptedVerify, err := sessionjoin.Encrypt(pub, er.VerifyToken)
	if err != nil {
		return nil, err
	}

	state.AccessToken = ""

	return []packet.Emission{{
		Packet: &packet.EncryptionResponsePacket{
			SharedSecret: encryptedSecret,
			VerifyToken:  encryptedVerify,
		},
		Direction: packet.Serverbound,
	}}, nil
}

func postSendEncryptionRequest(p packet.Packet, ciphers *connstate.Ciphers, state *connstate.ConnState) {
	secret := state.SecretKey()
	_ = ciphers.Enable(secret[:]) // always a 16-byte key here, so this cannot fail
}
