package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/closet/internal/client/client"
	"github.com/dmitrijs2005/closet/internal/client/models"
	"github.com/dmitrijs2005/closet/internal/common"
	"github.com/dmitrijs2005/closet/internal/filex"
	"github.com/dmitrijs2005/closet/internal/logging"
)

// AddedMessage is the acknowledgement the API returns for a created item.
const AddedMessage = "Item added successfully"

const fallbackError = "An error occurred"

// ErrMissingFields is returned by Submit when a field or the image is empty.
var ErrMissingFields = fmt.Errorf("%w: Please fill in all fields and upload an image.", common.ErrValidation)

// ErrRejected wraps a non-acknowledgement answer from the API.
var ErrRejected = errors.New("item rejected")

// Field names an ItemForm input.
type Field string

const (
	FieldType     Field = "type"
	FieldColor    Field = "color"
	FieldStyle    Field = "style"
	FieldOccasion Field = "occasion"
	FieldImage    Field = "image"
)

// Fields returns the form inputs in display order.
func Fields() []Field {
	return []Field{FieldType, FieldColor, FieldStyle, FieldOccasion, FieldImage}
}

// ParseField accepts a field name in any case.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// ItemForm collects a new closet item and uploads it.
type ItemForm struct {
	client   client.Client
	logger   logging.Logger
	duration time.Duration

	values map[Field]string
	banner string
	notice Notice
}

// NewItemForm returns an empty form. A non-positive noticeDuration falls
// back to DefaultNoticeDuration.
func NewItemForm(c client.Client, logger logging.Logger, noticeDuration time.Duration) *ItemForm {
	if noticeDuration <= 0 {
		noticeDuration = DefaultNoticeDuration
	}
	return &ItemForm{
		client:   c,
		logger:   logger,
		duration: noticeDuration,
		values:   make(map[Field]string, len(Fields())),
	}
}

// Set stores value for f. The image field holds a file path.
func (f *ItemForm) Set(field Field, value string) {
	f.values[field] = value
}

func (f *ItemForm) Get(field Field) string {
	return f.values[field]
}

// Complete reports whether every field has a value.
func (f *ItemForm) Complete() bool {
	for _, field := range Fields() {
		if strings.TrimSpace(f.values[field]) == "" {
			return false
		}
	}
	return true
}

// Banner is the persistent error message from the last attempt.
func (f *ItemForm) Banner() string { return f.banner }

// Notice is the success notice.
func (f *ItemForm) Notice() *Notice { return &f.notice }

// NoticeDuration is how long the success notice stays visible.
func (f *ItemForm) NoticeDuration() time.Duration { return f.duration }

// DismissNotice hides the success notice early.
func (f *ItemForm) DismissNotice() { f.notice.Dismiss() }

// Submit validates, uploads and handles the answer. Every failure is also
// kept as the banner until the next attempt.
func (f *ItemForm) Submit(ctx context.Context) error {
	if !f.Complete() {
		f.banner = "Please fill in all fields and upload an image."
		return ErrMissingFields
	}

	img, err := filex.LoadImage(f.values[FieldImage])
	if err != nil {
		f.banner = err.Error()
		return err
	}

	item := models.NewItem{
		Type:     f.values[FieldType],
		Color:    f.values[FieldColor],
		Style:    f.values[FieldStyle],
		Occasion: f.values[FieldOccasion],
	}
	image := models.Image{Filename: img.Name, ContentType: img.ContentType, Data: img.Data}

	msg, err := f.client.AddItem(ctx, item, image)
	if err != nil {
		f.logger.Error(ctx, "add item failed", "error", err)
		f.banner = err.Error()
		return err
	}

	if msg != AddedMessage {
		if msg == "" {
			msg = fallbackError
		}
		f.banner = msg
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	f.logger.Info(ctx, "item added", "type", item.Type)
	f.values = make(map[Field]string, len(Fields()))
	f.banner = ""
	f.notice.Show(AddedMessage, f.duration)
	return nil
}
