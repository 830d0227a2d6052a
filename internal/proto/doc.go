// Package proto holds the generated gRPC contract of the draft service.
// The source lives in proto/jobwizard/v1/draft_service.proto.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/jobwizard --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/jobwizard jobwizard/v1/draft_service.proto
