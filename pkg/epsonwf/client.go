package epsonwf

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// StatusReader reads the embedded status page of an Epson printer.
type StatusReader interface {
	Open() error
	Close() error
	Validate() error
	GetInfo() (*PrinterInfo, error)
	GetSnapshot() (*Snapshot, error)
}

type HTTPStatusReader struct {
	http   *resty.Client
	url    string
	logger *log.Entry
}

func CreateHTTPStatusReader(host string, path string, useTLS bool, timeout time.Duration,
	logger *log.Logger) (StatusReader, error) {
	if host == "" {
		return nil, errors.New("printer host must not be empty")
	}
	if path == "" {
		path = DefaultStatusPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if logger == nil {
		logger = log.StandardLogger()
	}

	scheme := "http"
	client := resty.New().SetTimeout(timeout)
	if useTLS {
		scheme = "https"
		// printer firmwares ship self-signed certs
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &HTTPStatusReader{
		http:   client,
		url:    fmt.Sprintf("%s://%s%s", scheme, host, path),
		logger: logger.WithField("target", host),
	}, nil
}

// Open probes the status page once so an unreachable printer fails at boot
// instead of on the first poll.
func (r *HTTPStatusReader) Open() error {
	_, err := r.fetch()
	return err
}

func (r *HTTPStatusReader) Close() error {
	r.http.GetClient().CloseIdleConnections()
	return nil
}

// Validate checks that the fetched page looks like one of the two known
// status page layouts.
func (r *HTTPStatusReader) Validate() error {
	snap, err := r.GetSnapshot()
	if err != nil {
		return err
	}
	if snap.PrinterStatus == "" && len(snap.Inks) == 0 && snap.Model == "" {
		return fmt.Errorf("could not find an Epson status page at %s", r.url)
	}
	return nil
}

func (r *HTTPStatusReader) GetInfo() (*PrinterInfo, error) {
	snap, err := r.GetSnapshot()
	if err != nil {
		return nil, err
	}
	model := snap.Model
	if model == "" {
		model = DefaultModel
	}
	return &PrinterInfo{
		Model:      model,
		MACAddress: snap.MACAddress,
	}, nil
}

func (r *HTTPStatusReader) GetSnapshot() (*Snapshot, error) {
	doc, err := r.fetch()
	if err != nil {
		return nil, err
	}
	return ParseStatusPage(doc), nil
}

func (r *HTTPStatusReader) fetch() (*goquery.Document, error) {
	start := time.Now()
	res, err := r.http.R().Get(r.url)
	if err != nil {
		r.logger.WithError(err).Debug("status page fetch failed")
		return nil, err
	}
	if res.IsError() {
		r.logger.WithField("status", res.StatusCode()).Debug("status page fetch failed")
		return nil, fmt.Errorf("status page returned HTTP %d", res.StatusCode())
	}
	r.logger.WithField("elapsed", time.Since(start)).Trace("status page fetched")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, err
	}
	return doc, nil
}
