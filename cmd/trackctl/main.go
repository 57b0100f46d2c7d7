package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/vidyasetu/scholartrack-backend/pkg/trackclient"
)

func main() {
	var (
		id     string
		server string
	)
	flag.StringVar(&id, "id", "", "Application ID to look up")
	flag.StringVar(&server, "server", "http://localhost:8080", "Lookup service base URL")
	flag.Parse()

	if err := trackclient.Validate(id); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}

	client := trackclient.New(server)
	tracker := trackclient.NewTracker(client)
	tracker.SetID(id)

	fmt.Printf("Looking up application %s...\n", id)

	record, err := tracker.Submit(context.Background())
	if err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}

	color.Green("Application found")
	render(record)
}

func render(r *trackclient.Record) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})

	table.Append([]string{"Application ID", fmt.Sprintf("%d", r.ID)})
	table.Append([]string{"Name", r.Name})
	table.Append([]string{"Course", r.CourseName})
	table.Append([]string{"Year of Study", fmt.Sprintf("%d", r.YearOfStudy)})
	table.Append([]string{"Submitted At", r.DisplayCreatedAt()})
	table.Append([]string{"Last Updated", r.DisplayUpdatedAt()})
	table.Append([]string{"Student Salaried", yesNo(r.StudentSalaried)})
	table.Append([]string{"Father Alive", yesNo(r.FatherAlive)})
	table.Append([]string{"Father Working", yesNo(r.FatherWorking)})
	table.Append([]string{"Father Occupation", orNA(r.FatherOccupation)})
	table.Append([]string{"Mother Alive", yesNo(r.MotherAlive)})
	table.Append([]string{"Mother Working", yesNo(r.MotherWorking)})
	table.Append([]string{"Mother Occupation", orNA(r.MotherOccupation)})
	table.Append([]string{"Marksheet Upload", orNA(r.MarksheetUpload)})
	table.Append([]string{"Aadhar No", r.AadharNo})
	table.Append([]string{"CAP ID", r.CapID})

	table.Render()
}

func yesNo(b bool) string {
	if b {
		return color.GreenString("Yes")
	}
	return color.RedString("No")
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return trackclient.NotAvailable
	}
	return *s
}
