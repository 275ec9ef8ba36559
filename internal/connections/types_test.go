package connections

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDValid(t *testing.T) {
	tests := []struct {
		id   ID
		want bool
	}{
		{Local, true},
		{GitHub, true},
		{Supabase, true},
		{Vercel, true},
		{ID("netlify"), false},
		{ID(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.Valid())
		})
	}
}

func TestIDDisplayName(t *testing.T) {
	tests := []struct {
		id   ID
		want string
	}{
		{Local, "Local Folder"},
		{GitHub, "GitHub"},
		{Supabase, "Supabase"},
		{Vercel, "Vercel"},
		// Unknown ids fall back to the raw value
		{ID("netlify"), "netlify"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.DisplayName())
		})
	}
}

func TestAllCoversKnownIntegrations(t *testing.T) {
	assert.Len(t, All, 4)
	for _, id := range All {
		assert.True(t, id.Valid(), "All should only contain known ids")
	}
	assert.Equal(t, Local, All[0], "local folder renders first")
}

func TestSnapshotGet(t *testing.T) {
	snap := &Snapshot{
		Statuses: map[ID]Status{
			GitHub: {Connected: true, Status: StatusConnected},
		},
	}

	st, ok := snap.Get(GitHub)
	assert.True(t, ok)
	assert.True(t, st.Connected)

	_, ok = snap.Get(Vercel)
	assert.False(t, ok)

	// Nil snapshot behaves like an empty one
	var nilSnap *Snapshot
	_, ok = nilSnap.Get(GitHub)
	assert.False(t, ok)
}

func TestSnapshotConnectedCount(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[ID]Status
		want     int
	}{
		{
			name:     "empty snapshot",
			statuses: map[ID]Status{},
			want:     0,
		},
		{
			name: "none connected",
			statuses: map[ID]Status{
				GitHub:   {Status: StatusNoGit},
				Supabase: {Status: StatusNotFound},
			},
			want: 0,
		},
		{
			name: "some connected",
			statuses: map[ID]Status{
				Local:    {Connected: true, Status: StatusConnected},
				GitHub:   {Connected: true, Status: StatusConnected},
				Supabase: {Status: StatusConfigOnly},
				Vercel:   {Status: StatusNotLinked},
			},
			want: 2,
		},
		{
			name: "all connected",
			statuses: map[ID]Status{
				Local:    {Connected: true, Status: StatusConnected},
				GitHub:   {Connected: true, Status: StatusConnected},
				Supabase: {Connected: true, Status: StatusConnected},
				Vercel:   {Connected: true, Status: StatusConnected},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{Statuses: tt.statuses, FetchedAt: time.Now()}
			assert.Equal(t, tt.want, snap.ConnectedCount())
		})
	}

	t.Run("nil snapshot", func(t *testing.T) {
		var snap *Snapshot
		assert.Equal(t, 0, snap.ConnectedCount())
	})
}
