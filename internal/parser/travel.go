package parser

import (
	"regexp"
	"strings"

	"card-wrapped/internal/domain"
)

var travelLabel = regexp.MustCompile(`(Passenger Name|Ticket Number|Departure Date|Route|Airline):`)

// ExtractTravel reads airline ticket fields from an extended details blob.
// Each value runs until the next label or the end of the line.
func ExtractTravel(details string) *domain.TravelDetail {
	locs := travelLabel.FindAllStringSubmatchIndex(details, -1)
	if len(locs) == 0 {
		return nil
	}

	travel := &domain.TravelDetail{}
	for i, loc := range locs {
		end := len(details)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		value := details[loc[1]:end]
		if nl := strings.IndexByte(value, '\n'); nl >= 0 {
			value = value[:nl]
		}
		value = strings.TrimSpace(value)

		switch details[loc[2]:loc[3]] {
		case "Passenger Name":
			travel.PassengerName = value
		case "Ticket Number":
			travel.TicketNumber = value
		case "Departure Date":
			travel.DepartureDate = value
		case "Route":
			travel.Route = value
		case "Airline":
			travel.Airline = value
		}
	}
	if *travel == (domain.TravelDetail{}) {
		return nil
	}
	return travel
}
