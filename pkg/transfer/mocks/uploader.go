// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/williamokano/arkv/pkg/transfer"
)

// MockUploader is a mock implementation of the transfer.Uploader interface
type MockUploader struct {
	mock.Mock
}

// Name provides a mock function with given fields:
func (m *MockUploader) Name() string {
	ret := m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Upload provides a mock function with given fields: ctx, root
func (m *MockUploader) Upload(ctx context.Context, root string) (*transfer.Stats, error) {
	ret := m.Called(ctx, root)

	var r0 *transfer.Stats
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*transfer.Stats, error)); ok {
		return rf(ctx, root)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *transfer.Stats); ok {
		r0 = rf(ctx, root)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*transfer.Stats)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, root)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockUploader creates a new instance of MockUploader
func NewMockUploader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUploader {
	mock_1 := &MockUploader{}
	mock_1.Mock.Test(t)

	t.Cleanup(func() { mock_1.AssertExpectations(t) })

	return mock_1
}
