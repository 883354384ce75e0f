//go:build tools
// +build tools

// Package chatpoll pins the code generators used by go:generate.
//
// mockgen produces everything under mocks/ from the contract and service
// interfaces. Importing it here keeps its version recorded in go.mod.
package chatpoll

import (
	_ "go.uber.org/mock/mockgen"
)
