// policy.go - Maps session security levels to permitted views
//
// Three tiers: 1 = admin, 2 = manager, 3 = staff. Lower number means
// more privileged. A view is guarded by a threshold (MinLevel) and,
// for two of the views, an additional exact-set re-check:
//
//	Level | add employee | list employees | list all raises | add own raise
//	  1   |     yes      |      yes       |       no        |     yes
//	  2   |     yes      |      yes       |       yes       |     yes
//	  3   |     no       |      no        |       no        |     yes
//
// The all-raises view is manager-only: an admin session passes the
// threshold but is still rejected by the exact-set check. That
// asymmetry is carried over from the existing deployment on purpose;
// the access-matrix test pins it.

package policy // Declares the package name

import "go-payraise-backend/models"

// Requirement describes the access rule for one protected view.
type Requirement struct {
	Name     string // View name, used in logs
	MinLevel int    // Numerically highest level allowed (1 is most privileged)
	Exact    []int  // When set, the level must also be one of these
}

// The four guarded operations.
var (
	AddEmployee      = Requirement{Name: "add_employee", MinLevel: models.LevelManager}
	ListEmployees    = Requirement{Name: "list_employees", MinLevel: models.LevelManager, Exact: []int{models.LevelAdmin, models.LevelManager}}
	ListAllPayRaises = Requirement{Name: "list_all_payraises", MinLevel: models.LevelManager, Exact: []int{models.LevelManager}}
	AddOwnPayRaise   = Requirement{Name: "add_own_payraise", MinLevel: models.LevelStaff}
)

// Authorize - Decides whether a session at the given security level may
// perform the operation. A nil level (no authenticated session) is
// always denied. The threshold gate runs first; a session that fails it
// never reaches the exact-set check.
func Authorize(level *int, req Requirement) bool {
	if level == nil {
		return false
	}
	if *level < models.LevelAdmin || *level > models.LevelStaff {
		return false // Unknown tier
	}
	if *level > req.MinLevel {
		return false // Not privileged enough
	}
	if len(req.Exact) > 0 {
		for _, allowed := range req.Exact {
			if *level == allowed {
				return true
			}
		}
		return false
	}
	return true
}
