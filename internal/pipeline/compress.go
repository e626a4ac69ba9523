package pipeline

import (
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"
	"go.uber.org/multierr"
)

// compressFile writes a bzip2 copy next to src and keeps src.
func compressFile(src string) (dst string, err error) {
	dst = src + ".bz2"
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	zw, err := bzip2.NewWriter(out, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return "", multierr.Append(err, out.Close())
	}
	_, err = io.Copy(zw, in)
	err = multierr.Combine(err, zw.Close(), out.Close())
	if err != nil {
		return "", err
	}
	return dst, nil
}
