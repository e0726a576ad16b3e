//go:build !windows && !darwin && !linux

package filelist

type stubBackend struct{}

func newPlatformBackend() backend { return stubBackend{} }

func (stubBackend) init() error { return ErrUnsupported }

func (stubBackend) readPaths() ([]string, error) { return nil, ErrUnsupported }

func (stubBackend) count() (int, error) { return 0, ErrUnsupported }

func (stubBackend) clear() error { return ErrUnsupported }
