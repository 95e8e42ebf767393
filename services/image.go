package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/storage"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Uploaded blog images are normalized to one shape and format.
const (
	imageWidth  = 2000
	imageHeight = 1333
	jpegQuality = 90
)

// ImageService runs the upload pipeline for blog images: filter out
// non-images, resize to the standard dimensions, re-encode as JPEG, and
// persist through the configured store. The store is injected at
// construction; nothing here is global.
type ImageService struct {
	store  storage.Store
	logger zerolog.Logger
}

func NewImageService(store storage.Store) *ImageService {
	return &ImageService{
		store:  store,
		logger: log.With().Str("service", "image").Logger(),
	}
}

// Process consumes an uploaded file and returns the generated filename to
// attach to the blog record. Files whose sniffed content type is not
// image/* are rejected before any decoding happens.
func (s *ImageService) Process(ctx context.Context, file io.Reader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", errs.NewBadRequestError("failed to read uploaded file")
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.NewBadUploadError(contentType)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errs.NewBadUploadError(contentType)
	}

	resized := imaging.Resize(img, imageWidth, imageHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", errs.NewInternalErrorWithCause("failed to encode image", err)
	}

	filename := fmt.Sprintf("blog-%d-%d.jpeg", time.Now().UnixMilli(), rand.Intn(1_000_000_000))

	location, err := s.store.Save(ctx, filename, buf.Bytes())
	if err != nil {
		return "", errs.NewInternalErrorWithCause("failed to store image", err)
	}

	s.logger.Info().
		Str("filename", filename).
		Str("location", location).
		Int("bytes", buf.Len()).
		Msg("blog image processed")
	return filename, nil
}
