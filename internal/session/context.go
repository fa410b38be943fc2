package session

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	Header = "x-session-id"

	// DefaultID is used when the terminal does not send a session id, which
	// keeps a single-register setup working without any handshake.
	DefaultID = "default"
)

// GetSessionID reads the cart session from incoming gRPC metadata.
func GetSessionID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(Header); len(val) > 0 && strings.TrimSpace(val[0]) != "" {
			return strings.TrimSpace(val[0])
		}
	}
	return DefaultID
}
