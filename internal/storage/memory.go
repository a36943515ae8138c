package storage

// Memory is an in-process Store. It is used for ephemeral sessions and tests.
type Memory struct {
	values map[string]string

	// MaxValueBytes emulates a storage quota; zero disables it.
	MaxValueBytes int
	// FailGet and FailSet, when set, are returned (wrapped) from every call.
	FailGet error
	FailSet error
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	if m.FailGet != nil {
		return "", false, wrap("get", key, m.FailGet)
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.FailSet != nil {
		return wrap("set", key, m.FailSet)
	}
	if err := checkQuota(m.MaxValueBytes, key, value); err != nil {
		return err
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}
