package skill

import "errors"

var (
	// ErrSkillNotFound возникает когда навык не найден
	ErrSkillNotFound = errors.New("skill not found")

	// ErrSkillExists возникает при создании навыка с существующим названием
	ErrSkillExists = errors.New("skill already exists")

	// ErrSkillAlreadyOwned возникает когда у пользователя уже есть навык
	ErrSkillAlreadyOwned = errors.New("user already has the skill")

	// ErrNoOffers возникает когда навык пользователю не предлагали
	ErrNoOffers = errors.New("skill was not offered to the user")
)
