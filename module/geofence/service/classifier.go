package service

import "github.com/DivyanshTulsiani/geofence/module/geofence/domain"

// Verdict maps a zone to the binary safety status used for alerting.
// Outside every zone (nil) is safe: the absence of a defined zone is not
// itself dangerous. Caution zones do not alert either; only danger zones
// are unsafe.
func Verdict(z *domain.Zone) domain.SafetyStatus {
	if z != nil && z.Classification == domain.ClassDanger {
		return domain.StatusUnsafe
	}
	return domain.StatusSafe
}
