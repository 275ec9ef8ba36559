package panel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
)

func TestRenderDetail_LocalUsesSnapshot(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	st := connections.Status{
		Connected: true,
		Status:    connections.StatusConnected,
		Path:      "/home/dev/wave-app",
	}

	lines := m.renderDetail(connections.Local, st, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "/home/dev/wave-app")
}

func TestRenderDetail_LocalWithoutPath(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	lines := m.renderDetail(connections.Local, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "No folder information reported")
}

func TestRenderDetail_LoadingWhileFetching(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.fetching[connections.GitHub] = true

	lines := m.renderDetail(connections.GitHub, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Loading detail")
}

func TestRenderDetail_AbsentAfterFailedFetch(t *testing.T) {
	m := newTestModel(&fakeFetcher{})

	lines := m.renderDetail(connections.GitHub, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "No extra detail available")
}

func TestRenderDetail_GitHub(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.GitHub] = &connections.Detail{
		ID: connections.GitHub,
		GitHub: &connections.GitHubDetail{
			Repo:      "wave/app",
			Branch:    "main",
			RemoteURL: "git@github.com:wave/app.git",
			Ahead:     2,
			Behind:    1,
			LastCommit: &connections.Commit{
				SHA:     "a1b2c3d4e5f67890",
				Message: "Fix the build",
				Author:  "dev",
				Time:    time.Now().Add(-5 * time.Minute),
			},
		},
	}

	lines := m.renderDetail(connections.GitHub, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Repository")
	assert.Contains(t, joined, "wave/app")
	assert.Contains(t, joined, "main")
	assert.Contains(t, joined, "git@github.com:wave/app.git")
	assert.Contains(t, joined, "2 ahead, 1 behind")
	assert.Contains(t, joined, "a1b2c3d")
	assert.NotContains(t, joined, "a1b2c3d4")
	assert.Contains(t, joined, "Fix the build")
	assert.Contains(t, joined, "dev, 5m ago")
}

func TestRenderDetail_GitHubInSync(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.GitHub] = &connections.Detail{
		ID:     connections.GitHub,
		GitHub: &connections.GitHubDetail{Repo: "wave/app", Branch: "main"},
	}

	lines := m.renderDetail(connections.GitHub, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	// No ahead/behind row when fully in sync
	assert.NotContains(t, joined, "ahead")
}

func TestRenderDetail_Supabase(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.Supabase] = &connections.Detail{
		ID: connections.Supabase,
		Supabase: &connections.SupabaseDetail{
			ProjectRef:     "abcdefghijkl",
			Region:         "us-east-1",
			MigrationCount: 12,
			LastMigration:  "20260815091500",
		},
	}

	lines := m.renderDetail(connections.Supabase, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "abcdefghijkl")
	assert.Contains(t, joined, "us-east-1")
	assert.Contains(t, joined, "12 migrations")
	assert.Contains(t, joined, "20260815091500")
}

func TestRenderDetail_SupabaseSingleMigration(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.Supabase] = &connections.Detail{
		ID:       connections.Supabase,
		Supabase: &connections.SupabaseDetail{ProjectRef: "ref", MigrationCount: 1},
	}

	lines := m.renderDetail(connections.Supabase, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "1 migration")
	assert.NotContains(t, joined, "1 migrations")
}

func TestRenderDetail_Vercel(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.Vercel] = &connections.Detail{
		ID: connections.Vercel,
		Vercel: &connections.VercelDetail{
			ProjectID:   "prj_123",
			ProjectName: "wave-app",
			Deployments: []connections.Deployment{
				{ID: "dpl_1", State: "READY", URL: "wave-app.vercel.app", CreatedAt: time.Now().Add(-2 * time.Hour)},
				{ID: "dpl_2", State: "ERROR", URL: "wave-app-git-fix.vercel.app", CreatedAt: time.Now().Add(-26 * time.Hour)},
			},
		},
	}

	lines := m.renderDetail(connections.Vercel, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "wave-app")
	assert.Contains(t, joined, "ready")
	assert.Contains(t, joined, "error")
	assert.Contains(t, joined, "wave-app.vercel.app")
	assert.Contains(t, joined, "2h ago")
	assert.Contains(t, joined, "1d ago")
}

func TestRenderDetail_VercelCapsDeployments(t *testing.T) {
	deployments := make([]connections.Deployment, 5)
	for i := range deployments {
		deployments[i] = connections.Deployment{
			ID:        "dpl_" + string(rune('a'+i)),
			State:     "READY",
			URL:       "deploy-" + string(rune('a'+i)) + ".vercel.app",
			CreatedAt: time.Now(),
		}
	}

	m := newTestModel(&fakeFetcher{})
	m.details[connections.Vercel] = &connections.Detail{
		ID:     connections.Vercel,
		Vercel: &connections.VercelDetail{ProjectID: "prj_123", Deployments: deployments},
	}

	lines := m.renderDetail(connections.Vercel, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "deploy-c.vercel.app")
	assert.NotContains(t, joined, "deploy-d.vercel.app")
}

func TestRenderDetail_VercelNoDeployments(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.Vercel] = &connections.Detail{
		ID:     connections.Vercel,
		Vercel: &connections.VercelDetail{ProjectID: "prj_123"},
	}

	lines := m.renderDetail(connections.Vercel, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "prj_123")
	assert.Contains(t, joined, "No deployments yet")
}

func TestRenderDetail_NilSection(t *testing.T) {
	m := newTestModel(&fakeFetcher{})
	m.details[connections.GitHub] = &connections.Detail{ID: connections.GitHub}

	lines := m.renderDetail(connections.GitHub, connections.Status{}, 68)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "No repository detail reported")
}

func TestPadLabel(t *testing.T) {
	assert.Equal(t, "Branch      ", padLabel("Branch"))
	assert.Equal(t, "Deployments ", padLabel("Deployments"))
	// Long labels keep a single trailing space
	assert.Equal(t, "VeryLongLabel ", padLabel("VeryLongLabel"))
}

func TestLoadingDots(t *testing.T) {
	assert.Equal(t, "", loadingDots(0))
	assert.Equal(t, ".", loadingDots(1))
	assert.Equal(t, "...", loadingDots(3))
	assert.Equal(t, "", loadingDots(4))
}
