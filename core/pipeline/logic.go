package pipeline

func generateAppLogic(intent Intent) AppLogic {
	switch intent.Domain {
	case "billing":
		return AppLogic{
			AppType:  "bill_monitor",
			Features: []string{"bill upload", "anomaly detection", "auto-inquiry"},
		}
	case "scheduling":
		return AppLogic{
			AppType:  "scheduler",
			Features: []string{"auto-nudge", "calendar sync", "reminder system"},
		}
	case "decluttering":
		return AppLogic{
			AppType:  "donation_pickup",
			Features: []string{"item catalog", "pickup scheduling", "donation receipts"},
		}
	default:
		return AppLogic{AppType: "generic", Features: []string{}}
	}
}
