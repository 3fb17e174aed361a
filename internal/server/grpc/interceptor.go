package grpc

import (
	"context"
	"slices"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/storerating/internal/api"
	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/models"
	"github.com/dmitrijs2005/storerating/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// publicMethods need no access token.
var publicMethods = map[string]bool{
	api.FullMethod(api.MethodPing):   true,
	api.FullMethod(api.MethodSignup): true,
	api.FullMethod(api.MethodLogin):  true,
}

// rateLimitedMethods are throttled per peer.
var rateLimitedMethods = map[string]bool{
	api.FullMethod(api.MethodSignup): true,
	api.FullMethod(api.MethodLogin):  true,
}

// methodRoles lists the roles allowed to call each authenticated method.
var methodRoles = map[string][]models.Role{
	api.FullMethod(api.MethodMe):            models.Roles(),
	api.FullMethod(api.MethodListStores):    models.Roles(),
	api.FullMethod(api.MethodListUsers):     {models.RoleAdmin},
	api.FullMethod(api.MethodCreateUser):    {models.RoleAdmin},
	api.FullMethod(api.MethodCreateStore):   {models.RoleAdmin},
	api.FullMethod(api.MethodPlatformStats): {models.RoleAdmin},
	api.FullMethod(api.MethodStoreRatings):  {models.RoleAdmin, models.RoleStoreOwner},
	api.FullMethod(api.MethodSubmitRating):  {models.RoleUser},
	api.FullMethod(api.MethodMyStore):       {models.RoleStoreOwner},
}

func identityFrom(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

func methodName(fullMethod string) string {
	return fullMethod[strings.LastIndex(fullMethod, "/")+1:]
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, toStatus(err)
	}

	roles, ok := methodRoles[info.FullMethod]
	if !ok || !slices.Contains(roles, id.Role) {
		s.logger.Warn(ctx, "permission denied", "method", methodName(info.FullMethod), "user_id", id.UserID, "role", id.Role)
		return nil, status.Errorf(codes.PermissionDenied, "role %s may not call %s", id.Role, methodName(info.FullMethod))
	}

	return handler(context.WithValue(ctx, identityKey, id), req)
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if rateLimitedMethods[info.FullMethod] {
		key := peerKey(ctx)
		if !s.limiter.allow(key) {
			s.metrics.RateLimited(methodName(info.FullMethod))
			s.logger.Warn(ctx, "rate limit exceeded", "peer", key, "method", methodName(info.FullMethod))
			return nil, status.Error(codes.ResourceExhausted, "too many requests, try again later")
		}
	}
	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	s.metrics.ObserveRPC(methodName(info.FullMethod), code.String(), time.Since(start))
	s.logger.Debug(ctx, "rpc", "method", methodName(info.FullMethod), "code", code.String(), "duration", time.Since(start))

	return resp, err
}
