package analysis

import (
	"fmt"

	"github.com/alimgiray/gitfocus/internal/models"
)

// MissingLicense flags popular non-fork repositories without a license.
// More stars means more users affected, so the score grows with stars.
func MissingLicense(in *Input) []models.Finding {
	var findings []models.Finding
	for _, repo := range in.Repositories {
		if repo.Fork || repo.License != nil {
			continue
		}
		if repo.Stars < popularStarThreshold {
			continue
		}
		findings = append(findings, models.Finding{
			Category: models.CategoryHealth,
			Title:    fmt.Sprintf("Add a license to %s", repo.FullName),
			Score:    licenseScale.score(float64(repo.Stars - popularStarThreshold)),
		})
	}
	return findings
}

// StaleRepository flags non-fork repositories that people actually use but
// that haven't seen a push in a long time. Zero-star or recently pushed
// repos are too low-signal to flag.
func StaleRepository(in *Input) []models.Finding {
	var findings []models.Finding
	for _, repo := range in.Repositories {
		if repo.Fork || repo.Stars < staleRepoStarMinimum {
			continue
		}
		idleDays := daysBeyond(in.Now, repo.PushedAt, staleRepoAge)
		if idleDays < 0 {
			continue
		}
		findings = append(findings, models.Finding{
			Category: models.CategoryHealth,
			Title:    fmt.Sprintf("%s hasn't been pushed to in over six months", repo.FullName),
			Score:    staleRepoScale.score(idleDays),
		})
	}
	return findings
}

// MissingDescription flags starred non-fork repositories with no description.
func MissingDescription(in *Input) []models.Finding {
	var findings []models.Finding
	for _, repo := range in.Repositories {
		if repo.Fork || repo.Stars < staleRepoStarMinimum {
			continue
		}
		if repo.Description != nil && *repo.Description != "" {
			continue
		}
		findings = append(findings, models.Finding{
			Category: models.CategoryGrowth,
			Title:    fmt.Sprintf("Add a description to %s", repo.FullName),
			Score:    descriptionScale.score(float64(repo.Stars - staleRepoStarMinimum)),
		})
	}
	return findings
}

// StalePullRequest flags the user's open pull requests that have sat
// unmerged past the review horizon. Older PRs score higher.
func StalePullRequest(in *Input) []models.Finding {
	var findings []models.Finding
	for _, pr := range in.PullRequests {
		if !pr.Open {
			continue
		}
		openDays := daysBeyond(in.Now, pr.CreatedAt, stalePRAge)
		if openDays < 0 {
			continue
		}
		findings = append(findings, models.Finding{
			Category: models.CategoryWork,
			Title:    fmt.Sprintf("Stale PR: %s", pr.Title),
			Score:    stalePRScale.score(openDays),
			Link:     pr.URL,
		})
	}
	return findings
}

// StaleIssue flags the user's open issues that have gone quiet.
func StaleIssue(in *Input) []models.Finding {
	var findings []models.Finding
	for _, issue := range in.Issues {
		if !issue.Open {
			continue
		}
		openDays := daysBeyond(in.Now, issue.CreatedAt, staleIssueAge)
		if openDays < 0 {
			continue
		}
		findings = append(findings, models.Finding{
			Category: models.CategoryWork,
			Title:    fmt.Sprintf("Stale issue: %s", issue.Title),
			Score:    staleIssueScale.score(openDays),
			Link:     issue.URL,
		})
	}
	return findings
}

// ProfileGap flags missing profile basics that make an account harder to
// discover.
func ProfileGap(in *Input) []models.Finding {
	var findings []models.Finding
	if in.Profile.Bio == nil || *in.Profile.Bio == "" {
		findings = append(findings, models.Finding{
			Category: models.CategoryGrowth,
			Title:    "Add a bio to your profile",
			Score:    profileGapScore,
		})
	}
	if in.Profile.Blog == "" {
		findings = append(findings, models.Finding{
			Category: models.CategoryGrowth,
			Title:    "Add a website or blog link to your profile",
			Score:    profileGapScore,
		})
	}
	return findings
}

// ContributionGap flags accounts with no recent public activity. Only
// fires for accounts that have activity history at all, so brand-new
// accounts aren't nagged.
func ContributionGap(in *Input) []models.Finding {
	if len(in.Events) == 0 {
		return nil
	}
	latest := in.Events[0]
	for _, t := range in.Events[1:] {
		if t.After(latest) {
			latest = t
		}
	}
	quietDays := daysBeyond(in.Now, latest, contributionGapAge)
	if quietDays < 0 {
		return nil
	}
	return []models.Finding{{
		Category: models.CategoryGrowth,
		Title:    "No public activity in the last month",
		Score:    contributionGapScale.score(quietDays),
	}}
}
