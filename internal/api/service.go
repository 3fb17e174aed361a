// Package api defines the storerating gRPC service: its wire messages, a
// hand-written service descriptor and the JSON codec both ends use.
package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "storerating.v1.RatingService"

const (
	MethodPing          = "Ping"
	MethodSignup        = "Signup"
	MethodLogin         = "Login"
	MethodMe            = "Me"
	MethodListUsers     = "ListUsers"
	MethodCreateUser    = "CreateUser"
	MethodCreateStore   = "CreateStore"
	MethodListStores    = "ListStores"
	MethodStoreRatings  = "StoreRatings"
	MethodSubmitRating  = "SubmitRating"
	MethodPlatformStats = "PlatformStats"
	MethodMyStore       = "MyStore"
)

// FullMethod returns the path gRPC reports for method, e.g.
// "/storerating.v1.RatingService/Login".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type RatingServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Signup(context.Context, *SignupRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	Me(context.Context, *MeRequest) (*UserResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	CreateUser(context.Context, *CreateUserRequest) (*UserResponse, error)
	CreateStore(context.Context, *CreateStoreRequest) (*StoreResponse, error)
	ListStores(context.Context, *ListStoresRequest) (*ListStoresResponse, error)
	StoreRatings(context.Context, *StoreRatingsRequest) (*StoreOverview, error)
	SubmitRating(context.Context, *SubmitRatingRequest) (*SubmitRatingResponse, error)
	PlatformStats(context.Context, *PlatformStatsRequest) (*PlatformStatsResponse, error)
	MyStore(context.Context, *MyStoreRequest) (*StoreOverview, error)
}

// UnimplementedRatingServiceServer answers every method with
// codes.Unimplemented. Embed it to satisfy RatingServiceServer partially.
type UnimplementedRatingServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedRatingServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented(MethodPing)
}
func (UnimplementedRatingServiceServer) Signup(context.Context, *SignupRequest) (*AuthResponse, error) {
	return nil, unimplemented(MethodSignup)
}
func (UnimplementedRatingServiceServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, unimplemented(MethodLogin)
}
func (UnimplementedRatingServiceServer) Me(context.Context, *MeRequest) (*UserResponse, error) {
	return nil, unimplemented(MethodMe)
}
func (UnimplementedRatingServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented(MethodListUsers)
}
func (UnimplementedRatingServiceServer) CreateUser(context.Context, *CreateUserRequest) (*UserResponse, error) {
	return nil, unimplemented(MethodCreateUser)
}
func (UnimplementedRatingServiceServer) CreateStore(context.Context, *CreateStoreRequest) (*StoreResponse, error) {
	return nil, unimplemented(MethodCreateStore)
}
func (UnimplementedRatingServiceServer) ListStores(context.Context, *ListStoresRequest) (*ListStoresResponse, error) {
	return nil, unimplemented(MethodListStores)
}
func (UnimplementedRatingServiceServer) StoreRatings(context.Context, *StoreRatingsRequest) (*StoreOverview, error) {
	return nil, unimplemented(MethodStoreRatings)
}
func (UnimplementedRatingServiceServer) SubmitRating(context.Context, *SubmitRatingRequest) (*SubmitRatingResponse, error) {
	return nil, unimplemented(MethodSubmitRating)
}
func (UnimplementedRatingServiceServer) PlatformStats(context.Context, *PlatformStatsRequest) (*PlatformStatsResponse, error) {
	return nil, unimplemented(MethodPlatformStats)
}
func (UnimplementedRatingServiceServer) MyStore(context.Context, *MyStoreRequest) (*StoreOverview, error) {
	return nil, unimplemented(MethodMyStore)
}

// unary builds the descriptor entry for one method. call is usually a method
// expression such as RatingServiceServer.Login.
func unary[Req, Resp any](method string, call func(RatingServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RatingServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RatingServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var RatingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RatingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, RatingServiceServer.Ping),
		unary(MethodSignup, RatingServiceServer.Signup),
		unary(MethodLogin, RatingServiceServer.Login),
		unary(MethodMe, RatingServiceServer.Me),
		unary(MethodListUsers, RatingServiceServer.ListUsers),
		unary(MethodCreateUser, RatingServiceServer.CreateUser),
		unary(MethodCreateStore, RatingServiceServer.CreateStore),
		unary(MethodListStores, RatingServiceServer.ListStores),
		unary(MethodStoreRatings, RatingServiceServer.StoreRatings),
		unary(MethodSubmitRating, RatingServiceServer.SubmitRating),
		unary(MethodPlatformStats, RatingServiceServer.PlatformStats),
		unary(MethodMyStore, RatingServiceServer.MyStore),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storerating/v1/rating_service",
}

func RegisterRatingServiceServer(s grpc.ServiceRegistrar, srv RatingServiceServer) {
	s.RegisterService(&RatingServiceDesc, srv)
}
