package api

import (
	"context"

	"google.golang.org/grpc"
)

type RatingServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Me(ctx context.Context, in *MeRequest, opts ...grpc.CallOption) (*UserResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*UserResponse, error)
	CreateStore(ctx context.Context, in *CreateStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error)
	ListStores(ctx context.Context, in *ListStoresRequest, opts ...grpc.CallOption) (*ListStoresResponse, error)
	StoreRatings(ctx context.Context, in *StoreRatingsRequest, opts ...grpc.CallOption) (*StoreOverview, error)
	SubmitRating(ctx context.Context, in *SubmitRatingRequest, opts ...grpc.CallOption) (*SubmitRatingResponse, error)
	PlatformStats(ctx context.Context, in *PlatformStatsRequest, opts ...grpc.CallOption) (*PlatformStatsResponse, error)
	MyStore(ctx context.Context, in *MyStoreRequest, opts ...grpc.CallOption) (*StoreOverview, error)
}

type ratingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRatingServiceClient wraps cc. Every call is sent with the JSON codec.
func NewRatingServiceClient(cc grpc.ClientConnInterface) RatingServiceClient {
	return &ratingServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ratingServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *ratingServiceClient) Signup(ctx context.Context, in *SignupRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, MethodSignup, in, opts)
}

func (c *ratingServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *ratingServiceClient) Me(ctx context.Context, in *MeRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, MethodMe, in, opts)
}

func (c *ratingServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, MethodListUsers, in, opts)
}

func (c *ratingServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, MethodCreateUser, in, opts)
}

func (c *ratingServiceClient) CreateStore(ctx context.Context, in *CreateStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error) {
	return invoke[StoreResponse](ctx, c.cc, MethodCreateStore, in, opts)
}

func (c *ratingServiceClient) ListStores(ctx context.Context, in *ListStoresRequest, opts ...grpc.CallOption) (*ListStoresResponse, error) {
	return invoke[ListStoresResponse](ctx, c.cc, MethodListStores, in, opts)
}

func (c *ratingServiceClient) StoreRatings(ctx context.Context, in *StoreRatingsRequest, opts ...grpc.CallOption) (*StoreOverview, error) {
	return invoke[StoreOverview](ctx, c.cc, MethodStoreRatings, in, opts)
}

func (c *ratingServiceClient) SubmitRating(ctx context.Context, in *SubmitRatingRequest, opts ...grpc.CallOption) (*SubmitRatingResponse, error) {
	return invoke[SubmitRatingResponse](ctx, c.cc, MethodSubmitRating, in, opts)
}

func (c *ratingServiceClient) PlatformStats(ctx context.Context, in *PlatformStatsRequest, opts ...grpc.CallOption) (*PlatformStatsResponse, error) {
	return invoke[PlatformStatsResponse](ctx, c.cc, MethodPlatformStats, in, opts)
}

func (c *ratingServiceClient) MyStore(ctx context.Context, in *MyStoreRequest, opts ...grpc.CallOption) (*StoreOverview, error) {
	return invoke[StoreOverview](ctx, c.cc, MethodMyStore, in, opts)
}
