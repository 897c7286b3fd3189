package generator

import "context"

// MockLLM is an LLMClient returning a canned reply. Used in tests and for
// offline development.
type MockLLM struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockLLM) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
