package pipeline

func deployToTargets(logic AppLogic) Deployment {
	targets := []string{"web"}
	if logic.AppType == "scheduler" || logic.AppType == "bill_monitor" {
		targets = append(targets, "mobile")
	}

	return Deployment{
		Targets:      targets,
		Status:       "pending",
		Instructions: "Ready for deployment",
	}
}
