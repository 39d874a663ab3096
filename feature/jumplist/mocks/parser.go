package mocks

import (
	"jumplist-exporter/feature/jumplist/models"

	"github.com/stretchr/testify/mock"
)

// Parser is a mock implementation of jumplist.Parser
type Parser struct {
	mock.Mock
}

func (m *Parser) LoadAutomatic(path string) (*models.AutomaticDestination, error) {
	args := m.Called(path)
	if auto, ok := args.Get(0).(*models.AutomaticDestination); ok {
		return auto, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Parser) LoadCustom(path string) (*models.CustomDestination, error) {
	args := m.Called(path)
	if custom, ok := args.Get(0).(*models.CustomDestination); ok {
		return custom, args.Error(1)
	}
	return nil, args.Error(1)
}
