package reference

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTicker(t *testing.T) {
	u := Builtin()

	tests := []struct {
		name      string
		raw       string
		wantValid bool
		wantIndex bool
		sector    string
		errPrefix string
	}{
		{name: "member", raw: "aapl ", wantValid: true, sector: "Technology"},
		{name: "allowed index", raw: "^gspc", wantValid: true, wantIndex: true},
		{name: "unsupported index", raw: "^FTSE", wantIndex: true, errPrefix: "Index ^FTSE is not supported. Allowed indices: ^GSPC, ^DJI"},
		{name: "non member", raw: "ZZZZ", errPrefix: "Ticker ZZZZ is not in the S&P 500."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := u.ValidateTicker(tt.raw)
			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, tt.wantIndex, v.IsIndex)
			assert.Equal(t, tt.sector, v.Sector)
			if tt.errPrefix != "" {
				assert.Contains(t, v.Error, tt.errPrefix)
			} else {
				assert.Empty(t, v.Error)
			}
		})
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, ValidFormat("AAPL"))
	assert.True(t, ValidFormat(" ^vix "))
	assert.False(t, ValidFormat("TOOLONG"))
	assert.False(t, ValidFormat("BRK.B"))
	assert.False(t, ValidFormat("12"))
	assert.False(t, ValidFormat(""))
}

func TestSectors(t *testing.T) {
	u := Builtin()

	sectors := u.Sectors()
	require.Len(t, sectors, 11)
	assert.Equal(t, "Technology", sectors[0])
	assert.Equal(t, "Real Estate", sectors[10])

	assert.True(t, u.IsSector("Energy"))
	assert.False(t, u.IsSector("energy"))

	// 복사본 반환
	sectors[0] = "mutated"
	assert.Equal(t, "Technology", u.Sectors()[0])
}

func TestRepresentativeTickers(t *testing.T) {
	u := Builtin()

	all := u.RepresentativeTickers("")
	assert.Len(t, all, 72)
	assert.Equal(t, []string{"AAPL", "MSFT"}, all[:2])

	energy := u.RepresentativeTickers("Energy")
	assert.Equal(t, []string{"XOM", "CVX", "COP", "EOG", "SLB", "MPC"}, energy)

	assert.Empty(t, u.RepresentativeTickers("Nope"))

	for _, ticker := range all {
		assert.True(t, u.IsValidTicker(ticker), ticker)
	}
}

func TestNewUniverseCustomSector(t *testing.T) {
	u := NewUniverse(map[string][]string{
		"Energy": {"xom"},
		"Crypto": {"COIN"},
	}, nil)

	assert.Equal(t, []string{"Energy", "Crypto"}, u.Sectors())
	sector, ok := u.SectorOf("XOM")
	assert.True(t, ok)
	assert.Equal(t, "Energy", sector)
	assert.Equal(t, 2, u.Size())
}

func TestRepository_Load(t *testing.T) {
	// Skip if running in CI without database
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	url := os.Getenv("REFERENCE_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("REFERENCE_TEST_DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err, "database connection failed")
	defer db.Close()

	u, err := NewRepository(db).Load(context.Background())
	require.NoError(t, err)
	assert.Greater(t, u.Size(), 0)
}
