package availability

import (
	"context"
	"fmt"
	"time"

	"salonkit/models"
)

// Year bounds accepted by calendar and date validation.
const (
	minYear = 2000
	maxYear = 2100
)

// resolved carries everything a computation needs after request-level
// validation: the visible menu, its effective policy, the staff roster to
// generate for, and the rendering timezone.
type resolved struct {
	menu           *models.Menu
	policy         MenuPolicy
	staff          []models.Staff
	staffIDs       []string
	staffPreferred bool
	loc            *time.Location
	tzName         string
}

// resolveRequest validates menu visibility, resolves the staff set, and
// applies provider defaults. Validation order matters: menu problems are
// reported before staff configuration problems.
func (se *DefaultAvailabilityService) resolveRequest(ctx context.Context, menuID, staffID, tz string, caller Caller) (*resolved, error) {
	menu, err := se.MenuRepo.GetByID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("menu lookup: %w", err)
	}
	if menu == nil {
		return nil, NewError(CodeMenuNotFound, "menu not found")
	}
	if !menu.Published && !caller.CanManage {
		return nil, NewError(CodeMenuNotPublished, "menu is not published")
	}
	if menu.Archived {
		return nil, NewError(CodeMenuArchived, "menu is archived")
	}
	if menu.OnlineDisabled {
		return nil, NewError(CodeMenuOnlineDisabled, "online booking is disabled for this menu")
	}

	settings, err := se.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings lookup: %w", err)
	}

	eligible := menu.EligibleStaffIDs()
	var staffIDs []string
	staffPreferred := false

	if staffID != "" {
		if len(eligible) > 0 && !menu.AllowsStaff(staffID) && se.EnforceStaffRestriction {
			return nil, NewError(CodeStaffNotAssigned, "requested staff is not assigned to this menu")
		}
		staffIDs = []string{staffID}
		staffPreferred = true
	} else {
		if len(eligible) == 0 {
			return nil, NewError(CodeStaffNotConfigured, "no staff configured for this menu")
		}
		staffIDs = eligible
	}

	staff, err := se.StaffRepo.GetByIDs(ctx, staffIDs)
	if err != nil {
		return nil, fmt.Errorf("staff lookup: %w", err)
	}

	loc := se.location(tz)

	return &resolved{
		menu:           menu,
		policy:         ResolvePolicy(menu, settings),
		staff:          staff,
		staffIDs:       staffIDs,
		staffPreferred: staffPreferred,
		loc:            loc,
		tzName:         loc.String(),
	}, nil
}
