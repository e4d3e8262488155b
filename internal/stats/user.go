package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/render"
)

// UserResult holds user type, gender and birth year statistics.
// Optional parts are only filled when the dataset carries the column.
type UserResult struct {
	UserTypes []Count[string]

	HasGender bool
	Genders   []Count[string]

	HasBirthYear      bool
	EarliestBirthYear *int
	LatestBirthYear   *int
	CommonBirthYear   *int
}

// ComputeUsers counts user types and genders and summarizes birth years.
func ComputeUsers(ds model.Dataset) (UserResult, error) {
	if err := require(ds, model.ColUserType); err != nil {
		return UserResult{}, err
	}
	if ds.Len() == 0 {
		return UserResult{}, ErrNoData
	}
	res := UserResult{
		HasGender:    ds.Has(model.ColGender),
		HasBirthYear: ds.Has(model.ColBirthYear),
	}

	userTypes := make([]string, 0, ds.Len())
	var genders []string
	var years []int
	for _, r := range ds.Records {
		if r.UserType != "" {
			userTypes = append(userTypes, r.UserType)
		}
		if res.HasGender && r.Gender != "" {
			genders = append(genders, r.Gender)
		}
		if res.HasBirthYear && r.BirthYear != nil {
			years = append(years, *r.BirthYear)
		}
	}
	res.UserTypes = ValueCounts(userTypes)
	if res.HasGender {
		res.Genders = ValueCounts(genders)
	}
	if len(years) > 0 {
		earliest, latest := years[0], years[0]
		for _, y := range years[1:] {
			earliest = min(earliest, y)
			latest = max(latest, y)
		}
		common, _ := Mode(years)
		res.EarliestBirthYear = &earliest
		res.LatestBirthYear = &latest
		res.CommonBirthYear = &common
	}
	return res, nil
}

// UserStats prints user type counts, gender counts and birth year summaries.
func UserStats(w io.Writer, ds model.Dataset) error {
	res, err := ComputeUsers(ds)
	if err != nil {
		return noDataOr(w, err)
	}
	if err := writeCounts(w, "Counts of user types:", "User Type", res.UserTypes); err != nil {
		return err
	}

	if res.HasGender {
		if err := writeLines(w, ""); err != nil {
			return err
		}
		if err := writeCounts(w, "Counts of user gender:", "Gender", res.Genders); err != nil {
			return err
		}
		if res.EarliestBirthYear != nil {
			if err := writeLines(w, "", fmt.Sprintf("Earliest year of birth: %d", *res.EarliestBirthYear)); err != nil {
				return err
			}
		}
	} else if err := writeLines(w, "Gender data not present in bike dataset!"); err != nil {
		return err
	}

	if !res.HasBirthYear {
		return writeLines(w, "Birth Year data not present in bike dataset!")
	}
	if res.LatestBirthYear == nil {
		return writeLines(w, "No birth year values recorded.")
	}
	return writeLines(w,
		fmt.Sprintf("Most recent year of birth: %d", *res.LatestBirthYear),
		fmt.Sprintf("Most frequent year of birth: %d", *res.CommonBirthYear),
	)
}

func writeCounts(w io.Writer, title, label string, counts []Count[string]) error {
	if err := writeLines(w, title); err != nil {
		return err
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, strconv.Itoa(c.N)})
	}
	return render.WriteTable(w, []string{label, "Count"}, rows, map[int]bool{1: true}, 0)
}
