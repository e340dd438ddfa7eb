// Package source opens the table to convert. Inputs are local paths,
// s3://bucket/key objects or http(s) URLs.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
)

const s3Scheme = "s3://"

// IOError reports an input or output that could not be opened, read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type Opener struct {
	client     Doer
	downloader s3manageriface.DownloaderAPI
}

// NewOpener returns an Opener fetching http(s) inputs with client. The S3
// downloader is created from the default AWS session on first use.
func NewOpener(client Doer) *Opener {
	return &Opener{client: client}
}

// WithDownloader replaces the S3 downloader.
func (o *Opener) WithDownloader(d s3manageriface.DownloaderAPI) *Opener {
	o.downloader = d
	return o
}

// Open returns a reader for path. The caller closes it. Every error is an *IOError.
func (o *Opener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(path, s3Scheme):
		return o.openS3(ctx, path)
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return o.openHTTP(ctx, path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, &IOError{Op: "open", Path: path, Err: err}
		}
		return f, nil
	}
}

// ParseS3Path splits s3://bucket/key into its bucket and key.
func ParseS3Path(path string) (bucket, key string, err error) {
	splitedPath := strings.SplitN(strings.TrimPrefix(path, s3Scheme), "/", 2)
	if len(splitedPath) != 2 || splitedPath[0] == "" || splitedPath[1] == "" {
		return "", "", fmt.Errorf("invalid s3 path %q: want s3://bucket/key", path)
	}
	return splitedPath[0], splitedPath[1], nil
}

func (o *Opener) openS3(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := ParseS3Path(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	if o.downloader == nil {
		sess, err := session.NewSession()
		if err != nil {
			return nil, &IOError{Op: "open", Path: path, Err: err}
		}
		o.downloader = s3manager.NewDownloader(sess)
	}

	buf := aws.NewWriteAtBuffer([]byte{})
	n, err := o.downloader.DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, &IOError{Op: "download", Path: path, Err: err}
	}
	slog.Debug(fmt.Sprintf("file downloaded, %d bytes", n))
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func (o *Opener) openHTTP(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, &IOError{Op: "download", Path: path, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &IOError{Op: "download", Path: path, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	slog.Debug(fmt.Sprintf("fetched %s: %s", path, resp.Status))
	return resp.Body, nil
}
