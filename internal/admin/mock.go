package admin

import "sync"

// MockVerifier is a mock implementation of the Verifier interface for testing.
type MockVerifier struct {
	mu sync.Mutex

	VerifyFunc  func(pin string) bool
	VerifyCalls []string
}

func NewMock() *MockVerifier {
	return &MockVerifier{}
}

func (m *MockVerifier) Verify(pin string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerifyCalls = append(m.VerifyCalls, pin)
	if m.VerifyFunc != nil {
		return m.VerifyFunc(pin)
	}
	return true
}
