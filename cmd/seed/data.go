package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tourbook/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Data set file names inside the seed directory.
const (
	toursFile   = "tours.json"
	usersFile   = "users.json"
	reviewsFile = "reviews.json"
)

// seedUser carries the plain password of a seeded account, which the user
// model never reads from JSON.
type seedUser struct {
	models.User
	Password string `json:"password"`
}

type dataSet struct {
	Tours   []models.Tour
	Users   []models.User
	Reviews []models.Review
}

// loadDataSet reads the three data files from dir and hashes every
// password. Users are not validated, so seeded accounts may carry any role.
func loadDataSet(dir string, hash func(string) (string, error)) (*dataSet, error) {
	var data dataSet

	if err := readJSON(filepath.Join(dir, toursFile), &data.Tours); err != nil {
		return nil, err
	}
	for i := range data.Tours {
		if data.Tours[i].RatingsAverage == 0 {
			data.Tours[i].RatingsAverage = models.DefaultRatingsAverage
		}
	}

	var users []seedUser
	if err := readJSON(filepath.Join(dir, usersFile), &users); err != nil {
		return nil, err
	}
	data.Users = make([]models.User, 0, len(users))
	for _, u := range users {
		hashed, err := hash(u.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", u.Email, err)
		}
		u.User.Password = hashed
		data.Users = append(data.Users, u.User)
	}

	if err := readJSON(filepath.Join(dir, reviewsFile), &data.Reviews); err != nil {
		return nil, err
	}

	return &data, nil
}

// reviewedTours lists each reviewed tour once, in order of first review.
func (d *dataSet) reviewedTours() []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, r := range d.Reviews {
		if !seen[r.Tour] {
			seen[r.Tour] = true
			ids = append(ids, r.Tour)
		}
	}
	return ids
}

func readJSON(path string, dest interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
