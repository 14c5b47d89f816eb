// Hand-written in the shape MockGen produces.
// Source: github.com/segalloc/segalloc/provider (interfaces: Provider)

// Package providermock holds a gomock double for provider.Provider,
// used where heap tests need to control or count calls to the collaborator
// without a real backing region.
package providermock

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	provider "github.com/segalloc/segalloc/provider"
)

// MockProvider is a mock of the Provider interface.
type MockProvider struct {
	ctrl     *gomock.Controller
	recorder *MockProviderMockRecorder
}

// MockProviderMockRecorder is the mock recorder for MockProvider.
type MockProviderMockRecorder struct {
	mock *MockProvider
}

// NewMockProvider creates a new mock instance.
func NewMockProvider(ctrl *gomock.Controller) *MockProvider {
	mock := &MockProvider{ctrl: ctrl}
	mock.recorder = &MockProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProvider) EXPECT() *MockProviderMockRecorder {
	return m.recorder
}

func (m *MockProvider) HeapLo() provider.Addr {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HeapLo")
	return ret[0].(provider.Addr)
}

func (mr *MockProviderMockRecorder) HeapLo() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HeapLo", reflect.TypeOf((*MockProvider)(nil).HeapLo))
}

func (m *MockProvider) HeapHi() provider.Addr {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HeapHi")
	return ret[0].(provider.Addr)
}

func (mr *MockProviderMockRecorder) HeapHi() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HeapHi", reflect.TypeOf((*MockProvider)(nil).HeapHi))
}

func (m *MockProvider) Sbrk(delta int) (provider.Addr, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Sbrk", delta)
	ret0, _ := ret[0].(provider.Addr)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockProviderMockRecorder) Sbrk(delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sbrk", reflect.TypeOf((*MockProvider)(nil).Sbrk), delta)
}

func (m *MockProvider) ReadWord(at provider.Addr) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadWord", at)
	return ret[0].(uint64)
}

func (mr *MockProviderMockRecorder) ReadWord(at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadWord", reflect.TypeOf((*MockProvider)(nil).ReadWord), at)
}

func (m *MockProvider) WriteWord(at provider.Addr, word uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "WriteWord", at, word)
}

func (mr *MockProviderMockRecorder) WriteWord(at, word any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteWord", reflect.TypeOf((*MockProvider)(nil).WriteWord), at, word)
}

func (m *MockProvider) Memcpy(dst, src provider.Addr, n int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Memcpy", dst, src, n)
}

func (mr *MockProviderMockRecorder) Memcpy(dst, src, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Memcpy", reflect.TypeOf((*MockProvider)(nil).Memcpy), dst, src, n)
}

func (m *MockProvider) Memset(dst provider.Addr, b byte, n int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Memset", dst, b, n)
}

func (mr *MockProviderMockRecorder) Memset(dst, b, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Memset", reflect.TypeOf((*MockProvider)(nil).Memset), dst, b, n)
}

func (m *MockProvider) Load(dst []byte, src provider.Addr) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Load", dst, src)
}

func (mr *MockProviderMockRecorder) Load(dst, src any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Load", reflect.TypeOf((*MockProvider)(nil).Load), dst, src)
}

func (m *MockProvider) Store(dst provider.Addr, src []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Store", dst, src)
}

func (mr *MockProviderMockRecorder) Store(dst, src any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockProvider)(nil).Store), dst, src)
}
