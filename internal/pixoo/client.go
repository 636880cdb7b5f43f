package pixoo

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"time"

	"flightstrip/internal/strip"
)

// Client talks to the local HTTP API of a Divoom Pixoo64. The device accepts
// one frame per request and plays the uploaded set in a loop natively, so a
// full animation is a burst of requests followed by silence until the next
// aircraft change.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the device at addr (host or host:port).
func NewClient(addr string) *Client {
	return &Client{
		url: fmt.Sprintf("http://%s/post", addr),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// command is the request envelope for every Pixoo API call.
type command struct {
	Command   string `json:"Command"`
	PicNum    int    `json:"PicNum,omitempty"`
	PicWidth  int    `json:"PicWidth,omitempty"`
	PicOffset int    `json:"PicOffset"`
	PicID     int    `json:"PicID,omitempty"`
	PicSpeed  int    `json:"PicSpeed,omitempty"`
	PicData   string `json:"PicData,omitempty"`
}

type deviceResponse struct {
	ErrorCode int `json:"error_code"`
}

// PushAnimation uploads a complete pre-rendered loop. The picture id counter
// is reset first so the device treats the upload as a fresh animation. Any
// failed request aborts the upload; the device keeps playing whatever loop
// it had before.
func (c *Client) PushAnimation(ctx context.Context, anim *strip.Animation) error {
	if anim == nil || len(anim.Frames) == 0 {
		return fmt.Errorf("no frames to send")
	}

	if err := c.post(ctx, &command{Command: "Draw/ResetHttpGifId"}); err != nil {
		return fmt.Errorf("failed to reset animation id: %w", err)
	}

	width := anim.Frames[0].Bounds().Dx()
	speedMs := int(anim.FrameDuration / time.Millisecond)

	slog.Debug("Sending animation to device",
		"frames", len(anim.Frames),
		"frame_speed_ms", speedMs,
	)

	for i, frame := range anim.Frames {
		cmd := &command{
			Command:   "Draw/SendHttpGif",
			PicNum:    len(anim.Frames),
			PicWidth:  width,
			PicOffset: i,
			PicID:     1,
			PicSpeed:  speedMs,
			PicData:   encodeFrame(frame),
		}
		if err := c.post(ctx, cmd); err != nil {
			return fmt.Errorf("failed to send frame %d/%d: %w", i+1, len(anim.Frames), err)
		}
	}

	return nil
}

// post sends one command and checks both the HTTP status and the device's
// own error_code field.
func (c *Client) post(ctx context.Context, cmd *command) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("device unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("device returned status %d", resp.StatusCode)
	}

	var dr deviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode device response: %w", err)
	}
	if dr.ErrorCode != 0 {
		return fmt.Errorf("device rejected %s: error_code=%d", cmd.Command, dr.ErrorCode)
	}

	return nil
}

// encodeFrame packs a frame into the raw base64 RGB byte stream the device
// expects: three bytes per pixel, row major, no alpha.
func encodeFrame(frame *image.RGBA) string {
	b := frame.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := frame.RGBAAt(x, y)
			buf = append(buf, c.R, c.G, c.B)
		}
	}
	return base64.StdEncoding.EncodeToString(buf)
}
