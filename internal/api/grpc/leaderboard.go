package grpc

import (
	context "context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const pageFullMethod = "/phantomboard.Leaderboard/Page"

// LeaderboardServer is the server API for phantomboard.Leaderboard service.
// Messages are generic structs, so no generated code is needed.
type LeaderboardServer interface {
	Page(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterLeaderboardServer registers LeaderboardServer implementation in grpc server.
func RegisterLeaderboardServer(s grpc.ServiceRegistrar, srv LeaderboardServer) {
	s.RegisterService(&leaderboardServiceDesc, srv)
}

func leaderboardPageHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeaderboardServer).Page(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: pageFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeaderboardServer).Page(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var leaderboardServiceDesc = grpc.ServiceDesc{
	ServiceName: "phantomboard.Leaderboard",
	HandlerType: (*LeaderboardServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Page",
			Handler:    leaderboardPageHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "phantomboard/leaderboard",
}

// LeaderboardClient is the client API for phantomboard.Leaderboard service.
type LeaderboardClient struct {
	cc grpc.ClientConnInterface
}

// NewLeaderboardClient creates new LeaderboardClient instance.
func NewLeaderboardClient(cc grpc.ClientConnInterface) *LeaderboardClient {
	return &LeaderboardClient{cc: cc}
}

// Page requests single leaderboard page.
func (c *LeaderboardClient) Page(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, pageFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
