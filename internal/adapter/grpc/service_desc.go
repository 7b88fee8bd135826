package grpc

// proto 生成コードが未生成のため、gRPC サービス記述子を手動定義する。
// buf generate 後にこのファイルは生成コードの RegisterWorkerServiceServer に置き換える。

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// JSONCodec は JSON ベースの gRPC コーデック。
type JSONCodec struct{}

func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (JSONCodec) Name() string { return "json" }

// WorkerServiceServer は gRPC WorkerService のサーバーインターフェース。
type WorkerServiceServer interface {
	RecordOperation(ctx context.Context, req *RecordOperationRequest) (*RecordOperationResponse, error)
	SaveBackup(ctx context.Context, req *SaveBackupRequest) (*SaveBackupResponse, error)
	GetRunConfig(ctx context.Context, req *GetRunConfigRequest) (*GetRunConfigResponse, error)
}

// RegisterWorkerServiceServer は WorkerGRPCService を gRPC サーバーに登録する。
func RegisterWorkerServiceServer(s *grpc.Server, svc *WorkerGRPCService) {
	s.RegisterService(&_WorkerService_serviceDesc, svc)
}

var _WorkerService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "timemult.ops.v1.WorkerService",
	HandlerType: (*WorkerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordOperation",
			Handler:    _WorkerService_RecordOperation_Handler,
		},
		{
			MethodName: "SaveBackup",
			Handler:    _WorkerService_SaveBackup_Handler,
		},
		{
			MethodName: "GetRunConfig",
			Handler:    _WorkerService_GetRunConfig_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "v1/worker.proto",
}

// --- WorkerService Handlers ---

func _WorkerService_RecordOperation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(RecordOperationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).RecordOperation(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/timemult.ops.v1.WorkerService/RecordOperation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).RecordOperation(ctx, req.(*RecordOperationRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _WorkerService_SaveBackup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(SaveBackupRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).SaveBackup(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/timemult.ops.v1.WorkerService/SaveBackup",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).SaveBackup(ctx, req.(*SaveBackupRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _WorkerService_GetRunConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetRunConfigRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).GetRunConfig(ctx, req)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/timemult.ops.v1.WorkerService/GetRunConfig",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).GetRunConfig(ctx, req.(*GetRunConfigRequest))
	}
	return interceptor(ctx, req, info, handler)
}
