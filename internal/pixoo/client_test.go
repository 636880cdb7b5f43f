package pixoo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flightstrip/internal/strip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCommand struct {
	Command   string `json:"Command"`
	PicNum    int    `json:"PicNum"`
	PicWidth  int    `json:"PicWidth"`
	PicOffset int    `json:"PicOffset"`
	PicID     int    `json:"PicID"`
	PicSpeed  int    `json:"PicSpeed"`
	PicData   string `json:"PicData"`
}

func testAnimation(frames int) *strip.Animation {
	anim := &strip.Animation{FrameDuration: 300 * time.Millisecond}
	for i := 0; i < frames; i++ {
		anim.Frames = append(anim.Frames, image.NewRGBA(image.Rect(0, 0, 64, 64)))
	}
	return anim
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(strings.TrimPrefix(srv.URL, "http://")), srv
}

func TestPushAnimation(t *testing.T) {
	var commands []recordedCommand
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var cmd recordedCommand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
		commands = append(commands, cmd)
		w.Write([]byte(`{"error_code":0}`))
	})

	err := client.PushAnimation(context.Background(), testAnimation(3))
	require.NoError(t, err)

	// One reset plus one request per frame.
	require.Len(t, commands, 4)
	assert.Equal(t, "Draw/ResetHttpGifId", commands[0].Command)

	for i, cmd := range commands[1:] {
		assert.Equal(t, "Draw/SendHttpGif", cmd.Command)
		assert.Equal(t, 3, cmd.PicNum)
		assert.Equal(t, 64, cmd.PicWidth)
		assert.Equal(t, i, cmd.PicOffset)
		assert.Equal(t, 300, cmd.PicSpeed)

		raw, err := base64.StdEncoding.DecodeString(cmd.PicData)
		require.NoError(t, err)
		assert.Equal(t, 64*64*3, len(raw))
	}
}

func TestPushAnimation_DeviceError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error_code":5}`))
	})

	err := client.PushAnimation(context.Background(), testAnimation(2))
	assert.ErrorContains(t, err, "error_code=5")
}

func TestPushAnimation_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.PushAnimation(context.Background(), testAnimation(1))
	assert.ErrorContains(t, err, "status 500")
}

func TestPushAnimation_Empty(t *testing.T) {
	client := NewClient("127.0.0.1:80")
	assert.Error(t, client.PushAnimation(context.Background(), &strip.Animation{}))
	assert.Error(t, client.PushAnimation(context.Background(), nil))
}
