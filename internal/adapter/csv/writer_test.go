package csv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/payments/internal/domain"
)

func TestWrite(t *testing.T) {
	locked := domain.NewAccount(2)
	locked.Locked = true

	funded := domain.NewAccount(1)
	funded.Available = decimal.RequireFromString("1.5")
	funded.Held = decimal.RequireFromString("0.25")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []*domain.Account{funded, locked}))

	want := "client,available,held,total,locked\n" +
		"1,1.5000,0.2500,1.7500,false\n" +
		"2,0.0000,0.0000,0.0000,true\n"
	require.Equal(t, want, buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	require.Equal(t, "client,available,held,total,locked\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_SurfacesIOErrors(t *testing.T) {
	err := Write(failingWriter{}, []*domain.Account{domain.NewAccount(1)})
	require.Error(t, err)
}
