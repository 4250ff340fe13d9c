// Package proto holds the TaskKeeper wire contract and its generated code.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative taskkeeper.proto
