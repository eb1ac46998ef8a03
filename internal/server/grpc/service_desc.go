package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "diagramkeeper.v1.DiagramKeeper"

// DiagramKeeperServer is the server API. Every message is a
// google.protobuf.Struct holding the camelCase JSON fields of the matching
// api request or response.
type DiagramKeeperServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Upload(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RetryMetadata(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListVersions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RestoreVersion(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetImageURL(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListFiles(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(DiagramKeeperServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call unaryMethod) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DiagramKeeperServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DiagramKeeperServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var methods = []struct {
	name string
	call unaryMethod
}{
	{"Generate", DiagramKeeperServer.Generate},
	{"Upload", DiagramKeeperServer.Upload},
	{"RetryMetadata", DiagramKeeperServer.RetryMetadata},
	{"ListVersions", DiagramKeeperServer.ListVersions},
	{"RestoreVersion", DiagramKeeperServer.RestoreVersion},
	{"GetImageURL", DiagramKeeperServer.GetImageURL},
	{"ListFiles", DiagramKeeperServer.ListFiles},
	{"Ping", DiagramKeeperServer.Ping},
}

// ServiceDesc describes DiagramKeeperServer for grpc.Server.RegisterService.
var ServiceDesc = newServiceDesc()

func newServiceDesc() grpc.ServiceDesc {
	desc := grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*DiagramKeeperServer)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "diagramkeeper/v1/diagramkeeper.proto",
	}
	for _, m := range methods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: m.name,
			Handler:    unaryHandler(m.name, m.call),
		})
	}
	return desc
}

func RegisterDiagramKeeperServer(s grpc.ServiceRegistrar, srv DiagramKeeperServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client is a minimal client of the service.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with in and returns the response struct.
func (c *Client) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
