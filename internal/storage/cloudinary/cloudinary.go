// Package cloudinary is a thin client for the Cloudinary upload API.
// Only signed upload and destroy are needed; everything else about the
// stored objects (serving, transformations, durability) stays on the
// Cloudinary side.
package cloudinary

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/techflow-dev/techflow/internal/config"
	internal_errors "github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/logger"
)

type UploadResult struct {
	SecureUrl string `json:"secure_url"`
	PublicId  string `json:"public_id"`
	Bytes     int64  `json:"bytes"`
}

type destroyResult struct {
	Result string `json:"result"`
}

type Client struct {
	http *resty.Client
	cfg  config.Cloudinary
}

func New(cfg config.Cloudinary) *Client {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cfg.CloudName)).
		SetTimeout(60 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second)

	return &Client{http: client, cfg: cfg}
}

// Upload pushes one object under the given public id. resourceType is
// "image" for images and "raw" for documents, matching how the objects
// must later be destroyed.
func (c *Client) Upload(data io.Reader, filename, publicId, resourceType string) (UploadResult, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicId,
		"timestamp": timestamp,
	}

	var result UploadResult
	resp, err := c.http.R().
		SetFileReader("file", filename, data).
		SetFormData(map[string]string{
			"api_key":   c.cfg.ApiKey,
			"public_id": publicId,
			"timestamp": timestamp,
			"signature": c.sign(params),
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/%s/upload", resourceType))
	if err != nil {
		return UploadResult{}, err
	}
	if resp.IsError() {
		logger.Log.Error("cloudinary upload failed", "status", resp.StatusCode(), "body", resp.String())
		return UploadResult{}, &internal_errors.ErrorWithStatusCode{Message: "File upload failed", StatusCode: 502}
	}
	return result, nil
}

// Destroy removes an uploaded object. A missing object is not an
// error; the caller is cleaning up and the end state is the same.
func (c *Client) Destroy(publicId, resourceType string) error {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicId,
		"timestamp": timestamp,
	}

	var result destroyResult
	resp, err := c.http.R().
		SetFormData(map[string]string{
			"api_key":   c.cfg.ApiKey,
			"public_id": publicId,
			"timestamp": timestamp,
			"signature": c.sign(params),
		}).
		SetResult(&result).
		Post(fmt.Sprintf("/%s/destroy", resourceType))
	if err != nil {
		return err
	}
	if resp.IsError() {
		logger.Log.Error("cloudinary destroy failed", "status", resp.StatusCode(), "body", resp.String())
		return &internal_errors.ErrorWithStatusCode{Message: "File cleanup failed", StatusCode: 502}
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: unexpected result %q", result.Result)
	}
	return nil
}

// sign builds the request signature Cloudinary expects: parameters
// sorted by name, joined as key=value with '&', with the API secret
// appended, hashed with SHA-1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.cfg.ApiSecret))
	return hex.EncodeToString(sum[:])
}
