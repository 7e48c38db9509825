package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/logging"
	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"github.com/dmitrijs2005/planwise/internal/server/config"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/dmitrijs2005/planwise/internal/server/observability"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/planwise/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "secret"

type fakeAvatars struct{}

func (fakeAvatars) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	return "https://s3.local/put/" + key, nil
}

func (fakeAvatars) PresignGet(ctx context.Context, key string) (string, error) {
	return "https://s3.local/get/" + key, nil
}

func newTestServer(t *testing.T) *GRPCServer {
	t.Helper()
	cfg := &config.Config{SecretKey: testSecret, SessionTokenValidityDuration: time.Hour}
	rm := repomanager.NewMemoryRepositoryManager()
	hasher := auth.NewBcryptHasher(auth.MinCost)
	tokens := services.NewTokenIssuer(cfg)

	return NewGRPCServer("127.0.0.1:0", logging.Nop{},
		services.NewCredentialService(nil, rm, hasher, tokens),
		services.NewAdminService(nil, rm, hasher, tokens, fakeAvatars{}),
		services.NewRosterService(nil, rm),
		testSecret,
		observability.NewMetrics(prometheus.NewRegistry()),
	)
}

// startBufServer serves s over an in-memory listener and returns a client.
func startBufServer(t *testing.T, s *GRPCServer) api.PlanWiseClient {
	t.Helper()
	return api.NewPlanWiseClient(startBufConn(t, s))
}

func startBufConn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})

	return conn
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func mustToken(t *testing.T, subject, id, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken(subject, id, role, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return tok
}

// seedAdmin stores an admin directly through the service and returns its ID.
func seedAdmin(t *testing.T, s *GRPCServer, email string) string {
	t.Helper()
	a, err := s.admins.Signup(context.Background(), models.Admin{Email: email, Name: "Ada"}, "pw")
	require.NoError(t, err)
	return a.ID
}

// seedMember adds a member without a credential and returns its ID.
func seedMember(t *testing.T, s *GRPCServer, name string) string {
	t.Helper()
	m, err := s.roster.AddMember(context.Background(), name, "", "")
	require.NoError(t, err)
	return m.ID
}
