package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"

	grpcapi "mycard-service/internal/api/grpc"
	"mycard-service/internal/converter"
	"mycard-service/internal/repository/memory"
	"mycard-service/internal/service/cards"
)

func testCard() *converter.CardDTO {
	bio := "Builds <things> & more"
	return &converter.CardDTO{
		ID:        "0123456789abcdef0123456789abcdef",
		Name:      "Omar Haddad",
		JobTitle:  "Backend Engineer",
		Bio:       &bio,
		Email:     "omar@example.com",
		Phone:     "+1 555 123 4567",
		Theme:     "creative",
		CreatedAt: "2025-03-01T10:00:00Z",
		URL:       "/card?id=0123456789abcdef0123456789abcdef",
	}
}

func TestPrintCard_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCard(&buf, formatJSON, testCard()))

	assert.Contains(t, buf.String(), "Builds <things> & more")
	assert.NotContains(t, buf.String(), "linkedin")

	var view cardView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "Omar Haddad", view.Name)
}

func TestPrintCard_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCard(&buf, formatYAML, testCard()))

	assert.Contains(t, buf.String(), "---\n")

	var view cardView
	require.NoError(t, yaml.Unmarshal(bytes.TrimSuffix(buf.Bytes(), []byte("---\n")), &view))
	assert.Equal(t, "creative", view.Theme)
	assert.Equal(t, "Builds <things> & more", view.Bio)
}

func TestPrintCard_Nil(t *testing.T) {
	assert.Error(t, printCard(&bytes.Buffer{}, formatJSON, nil))
}

func TestDescribeError(t *testing.T) {
	st, err := status.New(codes.InvalidArgument, "validation failed").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "email", Description: "email format is invalid"},
		},
	})
	require.NoError(t, err)

	described := describeError(st.Err())
	assert.Equal(t, "InvalidArgument: validation failed\n  email: email format is invalid", described.Error())

	plain := assert.AnError
	assert.Equal(t, plain, describeError(plain))
}

func TestRootCmd_UnsupportedOutput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"get", "abc", "--output", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestCreateAndGetCommands(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	service := cards.NewCardService(memory.NewRepository())
	server := grpcapi.NewServer(grpcapi.NewHandler(service, context.Background()), zap.NewNop())
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"create",
		"--addr", listener.Addr().String(),
		"--name", "Omar Haddad",
		"--job-title", "Backend Engineer",
		"--email", "omar@example.com",
		"--phone", "+1 555 123 4567",
	})
	require.NoError(t, cmd.Execute())

	var created cardView
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	assert.Len(t, created.ID, 32)
	assert.Equal(t, "modern", created.Theme)

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"get", created.ID, "--addr", listener.Addr().String(), "-o", "yaml"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "name: Omar Haddad")

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"get", "missing", "--addr", listener.Addr().String()})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotFound")
	assert.Contains(t, err.Error(), "CARD_NOT_FOUND")
}
