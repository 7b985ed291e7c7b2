package ingest

import (
	"encoding/json"
	"math"

	"github.com/lox/geoatmos/internal/spaceweather"
)

const (
	FlagApOutOfRange   = "ap_out_of_range"
	FlagKpOutOfRange   = "kp_out_of_range"
	FlagKpSumMismatch  = "kp_sum_mismatch"
	FlagApAvgMismatch  = "ap_avg_mismatch"
	FlagF107OutOfRange = "f107_out_of_range"
	FlagF107Predicted  = "f107_predicted"
	FlagAverageMissing = "f107_average_missing"
)

// ValidateRecord returns quality flags for implausible values. Flagged
// records are still stored.
func ValidateRecord(rec spaceweather.Record) []string {
	var flags []string

	apSum, kpSum := 0, 0
	apBad, kpBad := false, false
	for i := range rec.Ap {
		if rec.Ap[i] < 0 || rec.Ap[i] > 400 {
			apBad = true
		}
		if rec.Kp[i] < 0 || rec.Kp[i] > 90 {
			kpBad = true
		}
		apSum += rec.Ap[i]
		kpSum += rec.Kp[i]
	}
	if apBad || rec.ApAvg < 0 || rec.ApAvg > 400 {
		flags = append(flags, FlagApOutOfRange)
	}
	if kpBad {
		flags = append(flags, FlagKpOutOfRange)
	}
	// Kp tenths are rounded thirds, so sums may drift by a few units.
	if abs(kpSum-rec.KpSum) > 4 {
		flags = append(flags, FlagKpSumMismatch)
	}
	if math.Abs(float64(apSum)/8-float64(rec.ApAvg)) > 1 {
		flags = append(flags, FlagApAvgMismatch)
	}

	if rec.F107Obs < 50 || rec.F107Obs > 500 {
		flags = append(flags, FlagF107OutOfRange)
	}
	if rec.F107Type != spaceweather.F107Observed {
		flags = append(flags, FlagF107Predicted)
	}
	if rec.F107ObsCenter81 <= 0 || rec.F107ObsLast81 <= 0 {
		flags = append(flags, FlagAverageMissing)
	}

	return flags
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func QualityFlagsToJSON(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	b, _ := json.Marshal(flags)
	return string(b)
}
