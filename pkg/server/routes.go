package server

import (
	"net/http"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"

	"droscher.com/BrewWolf/configs"
	"droscher.com/BrewWolf/pkg/auth"
	"droscher.com/BrewWolf/pkg/integrations"
	"droscher.com/BrewWolf/pkg/repository"
	"droscher.com/BrewWolf/pkg/server/api"
	"droscher.com/BrewWolf/pkg/server/ratelimit"
)

// NewMux mounts every service plus the gRPC health check. Everything except
// AddUser and the health check needs a bearer token.
func NewMux(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) *http.ServeMux {
	limiter := ratelimit.NewLimiter(conf.Server, logger)
	authManager := auth.NewAuthManager(conf, repo, logger)

	public := []connect.HandlerOption{connect.WithInterceptors(limiter.Interceptor())}
	authenticated := []connect.HandlerOption{connect.WithInterceptors(limiter.Interceptor(), authManager.GrpcAuthInterceptor())}

	mux := http.NewServeMux()

	path, handler := NewUserServiceHandler(NewUserServer(repo, logger), public, authenticated)
	mux.Handle(path, handler)

	path, handler = NewBeerServiceHandler(NewBeerServer(repo, integrations.FromConfig(conf, logger), logger), authenticated...)
	mux.Handle(path, handler)

	path, handler = NewRatingServiceHandler(NewRatingServer(repo, repo, logger), authenticated...)
	mux.Handle(path, handler)

	checker := grpchealth.NewStaticChecker(api.UserServiceName, api.BeerServiceName, api.RatingServiceName)
	mux.Handle(grpchealth.NewHandler(checker))

	return mux
}
