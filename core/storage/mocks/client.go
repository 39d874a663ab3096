package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) EnsureDir(path string) (bool, error) {
	args := m.Called(path)
	return args.Bool(0), args.Error(1)
}

func (m *Client) Create(path string) (io.WriteCloser, error) {
	args := m.Called(path)
	if w, ok := args.Get(0).(io.WriteCloser); ok {
		return w, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) WriteFile(path string, data []byte) error {
	args := m.Called(path, data)
	return args.Error(0)
}
