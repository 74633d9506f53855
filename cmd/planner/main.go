package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"agribot/pkg/calendar"
	"agribot/pkg/planner"
)

// Renders one month of the irrigation calendar from a running server.
// Useful for eyeballing schedules without the web UI.
func main() {
	base := flag.String("base", "http://localhost:8080", "server base URL")
	token := flag.String("token", "", "bearer token (optional when the server runs without auth)")
	user := flag.String("user", "U_DEV_DEFAULT", "user id shown in created records")
	year := flag.Int("year", 0, "year (defaults to current)")
	month := flag.Int("month", 0, "month 1-12 (defaults to current)")
	flag.Parse()

	now := time.Now()
	if *year == 0 {
		*year = now.Year()
	}
	if *month == 0 {
		*month = int(now.Month())
	}
	if *month < 1 || *month > 12 {
		log.Fatalf("bad month %d", *month)
	}

	start := calendar.Month{Year: *year, Month: time.Month(*month)}
	sess := planner.NewSession(planner.NewHTTPBackend(*base, *token), *user, start)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := sess.Refresh(ctx); err != nil {
		log.Fatalf("fetch %04d-%02d: %v", *year, *month, err)
	}

	render(sess.View())
}

func render(view calendar.MonthView) {
	fmt.Printf("%s %d\n", view.Month.Month, view.Month.Year)
	fmt.Println("Su Mo Tu We Th Fr Sa")
	fmt.Print(strings.Repeat("   ", view.Offset))

	col := view.Offset
	for _, cell := range view.Days {
		fmt.Printf("%2d%s", cell.Day, mark(cell.Status))
		col++
		if col%7 == 0 {
			fmt.Println()
		}
	}
	if col%7 != 0 {
		fmt.Println()
	}
	fmt.Println("legend: * scheduled, + done, ! today")
}

func mark(s calendar.Status) string {
	switch s {
	case calendar.StatusScheduled:
		return "*"
	case calendar.StatusDone:
		return "+"
	case calendar.StatusToday:
		return "!"
	default:
		return " "
	}
}
