package list_sessions

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/internal/service/sessions/models"
)

// ToServiceRequest собирает фильтр из query параметров: trainerId, memberId, date, status
func ToServiceRequest(query url.Values) (*models.ListSessionsRequest, error) {
	req := &models.ListSessionsRequest{}

	if v := query.Get("trainerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TrainerID = &id
	}

	if v := query.Get("memberId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.MemberID = &id
	}

	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	return req, nil
}
