package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/util"
)

// maxDeploymentRows caps how many deployments an expanded Vercel card lists.
const maxDeploymentRows = 3

// renderDetail renders the per-integration body of an expanded card.
func (m Model) renderDetail(id connections.ID, st connections.Status, width int) []string {
	if id == connections.Local {
		return m.renderLocalDetail(st, width)
	}

	detail, ok := m.details[id]
	if !ok {
		if m.fetching[id] {
			return []string{"  " + MutedStyle.Render("Loading detail"+loadingDots(m.spinnerFrame))}
		}
		// A failed fetch leaves no cache entry; the card shows no extra
		// detail and re-expanding tries again.
		return []string{"  " + MutedStyle.Render("No extra detail available")}
	}

	switch id {
	case connections.GitHub:
		return m.renderGitHubDetail(detail.GitHub, width)
	case connections.Supabase:
		return m.renderSupabaseDetail(detail.Supabase, width)
	case connections.Vercel:
		return m.renderVercelDetail(detail.Vercel, width)
	}
	return nil
}

// renderLocalDetail shows the snapshot's own data; local has no detail
// endpoint.
func (m Model) renderLocalDetail(st connections.Status, width int) []string {
	var lines []string
	if st.Path != "" {
		lines = append(lines, detailRow("Path", truncate(st.Path, width-10)))
	}
	if st.Message != "" {
		lines = append(lines, wrapIndented(st.Message, MutedStyle, width)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "  "+MutedStyle.Render("No folder information reported"))
	}
	return lines
}

func (m Model) renderGitHubDetail(d *connections.GitHubDetail, width int) []string {
	if d == nil {
		return []string{"  " + MutedStyle.Render("No repository detail reported")}
	}

	var lines []string
	lines = append(lines, detailRow("Repository", d.Repo))
	lines = append(lines, detailRow("Branch", d.Branch))
	if d.RemoteURL != "" {
		lines = append(lines, detailRow("Remote", truncate(d.RemoteURL, width-12)))
	}
	if d.Ahead > 0 || d.Behind > 0 {
		lines = append(lines, detailRow("Sync", fmt.Sprintf("%d ahead, %d behind", d.Ahead, d.Behind)))
	}
	if c := d.LastCommit; c != nil {
		summary := fmt.Sprintf("%s %s", util.ShortSHA(c.SHA), truncate(c.Message, width-24))
		lines = append(lines, detailRow("Last commit", summary))
		meta := c.Author
		if ago := connections.TimeAgo(c.Time, time.Now()); ago != "" {
			meta += ", " + ago
		}
		lines = append(lines, "              "+MutedStyle.Render(meta))
	}
	return lines
}

func (m Model) renderSupabaseDetail(d *connections.SupabaseDetail, width int) []string {
	if d == nil {
		return []string{"  " + MutedStyle.Render("No database detail reported")}
	}

	var lines []string
	lines = append(lines, detailRow("Project ref", d.ProjectRef))
	if d.Region != "" {
		lines = append(lines, detailRow("Region", d.Region))
	}
	migrations := fmt.Sprintf("%d %s", d.MigrationCount, util.Pluralize(d.MigrationCount, "migration", "migrations"))
	if d.LastMigration != "" {
		migrations += ", latest " + d.LastMigration
	}
	lines = append(lines, detailRow("Migrations", truncate(migrations, width-14)))
	return lines
}

func (m Model) renderVercelDetail(d *connections.VercelDetail, width int) []string {
	if d == nil {
		return []string{"  " + MutedStyle.Render("No deployment detail reported")}
	}

	var lines []string
	name := d.ProjectName
	if name == "" {
		name = d.ProjectID
	}
	lines = append(lines, detailRow("Project", name))

	if len(d.Deployments) == 0 {
		lines = append(lines, "  "+MutedStyle.Render("No deployments yet"))
		return lines
	}

	lines = append(lines, detailRow("Deployments", ""))
	count := len(d.Deployments)
	if count > maxDeploymentRows {
		count = maxDeploymentRows
	}
	for _, dep := range d.Deployments[:count] {
		state := deploymentStateStyle(dep.State).Render(strings.ToLower(dep.State))
		ago := connections.TimeAgo(dep.CreatedAt, time.Now())
		row := "    " + state + " " + MutedStyle.Render(truncate(dep.URL, width-20))
		if ago != "" {
			row += " " + MutedStyle.Render("("+ago+")")
		}
		lines = append(lines, row)
	}
	return lines
}

// detailRow formats a left-aligned label column with its value.
func detailRow(label, value string) string {
	return "  " + LabelStyle.Render(padLabel(label)) + ValueStyle.Render(value)
}

// padLabel pads a detail label to a fixed column width.
func padLabel(label string) string {
	const labelWidth = 12
	if len(label) >= labelWidth {
		return label + " "
	}
	return label + strings.Repeat(" ", labelWidth-len(label))
}

// loadingDots animates trailing dots for in-flight detail fetches.
func loadingDots(frame int) string {
	return strings.Repeat(".", frame%4)
}
