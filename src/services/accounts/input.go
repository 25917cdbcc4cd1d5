package accounts

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/theleywin/talentnest/src/apperr"
	"github.com/theleywin/talentnest/src/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type SignupInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *SignupInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate checks the signup input.
func (i SignupInput) Validate() error {
	if i.Name == "" || i.Username == "" || i.Email == "" || i.Password == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(i.Email) {
		return ErrInvalidEmail
	}
	if len(i.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" || i.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// ProfileUpdate lists the profile fields a user may change. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name           *string              `json:"name"`
	Username       *string              `json:"username"`
	Headline       *string              `json:"headline"`
	About          *string              `json:"about"`
	Location       *string              `json:"location"`
	ProfilePicture *string              `json:"profilePicture"`
	BannerImg      *string              `json:"bannerImg"`
	Skills         *[]string            `json:"skills"`
	Experience     *[]models.Experience `json:"experience"`
	Education      *[]models.Education  `json:"education"`
}

func (u ProfileUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.InvalidArg("Name cannot be empty")
	}
	if u.Username != nil && strings.TrimSpace(*u.Username) == "" {
		return apperr.InvalidArg("Username cannot be empty")
	}
	return nil
}

// fields maps the update onto document fields for $set.
func (u ProfileUpdate) fields() bson.M {
	set := bson.M{}
	str := func(key string, v *string) {
		if v != nil {
			set[key] = strings.TrimSpace(*v)
		}
	}
	str("name", u.Name)
	str("username", u.Username)
	str("headline", u.Headline)
	str("about", u.About)
	str("location", u.Location)
	str("profile_picture", u.ProfilePicture)
	str("banner_img", u.BannerImg)
	if u.Skills != nil {
		set["skills"] = *u.Skills
	}
	if u.Experience != nil {
		set["experience"] = *u.Experience
	}
	if u.Education != nil {
		set["education"] = *u.Education
	}
	return set
}
