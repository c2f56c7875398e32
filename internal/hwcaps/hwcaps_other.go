//go:build !amd64 && !arm64

package hwcaps

func archFeatures() []Feature {
	return nil
}
