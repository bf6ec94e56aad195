package claims

import "github.com/Pavani8370/Multi-source/pkg/payerloader"

// SampleRows returns the two-row claims sample used for the manual payer.
// Each call returns fresh rows.
func SampleRows() InlineRows {
	return InlineRows{
		{
			ColMemberID:    int64(1),
			ColClaimID:     int64(1001),
			ColClaimAmount: int64(500),
			ColServiceDate: "2024-01-10",
			ColPayerName:   payerloader.PayerManual,
		},
		{
			ColMemberID:    int64(2),
			ColClaimID:     int64(1002),
			ColClaimAmount: int64(800),
			ColServiceDate: "2024-02-15",
			ColPayerName:   payerloader.PayerManual,
		},
	}
}
