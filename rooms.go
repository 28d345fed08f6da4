package housekeeping

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RoomMetadata derives floor and room type from a room number. The built-in
// RoomPolicy is a naming convention, not a building plan; deployments with a
// property-management system plug a real source in here.
type RoomMetadata interface {
	Floor(roomNumber string) int
	RoomType(roomNumber string) RoomType
}

// RoomPolicy is the digit-based convention: floor is the room number divided
// by 100, and the type comes from the last two digits. The digit sets are
// configuration so the boundaries can be tuned per property.
type RoomPolicy struct {
	// SuiteDigits are the last-two-digit values that mark a suite.
	SuiteDigits []int `yaml:"suite_digits"`

	// DeluxeDigits are the last-two-digit values that mark a deluxe room.
	DeluxeDigits []int `yaml:"deluxe_digits"`
}

// DefaultRoomPolicy returns the stock convention: x01 rooms are suites,
// x02 through x05 are deluxe, everything else is standard.
func DefaultRoomPolicy() *RoomPolicy {
	return &RoomPolicy{
		SuiteDigits:  []int{1},
		DeluxeDigits: []int{2, 3, 4, 5},
	}
}

// LoadRoomPolicy reads a RoomPolicy from a YAML file.
func LoadRoomPolicy(path string) (*RoomPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read room policy: %w", err)
	}
	policy := &RoomPolicy{}
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("parse room policy: %w", err)
	}
	return policy, nil
}

// Floor returns roomNumber / 100 using integer division, so "412" is floor 4
// and "1201" is floor 12. Non-numeric room numbers map to floor 0.
func (p *RoomPolicy) Floor(roomNumber string) int {
	n, err := strconv.Atoi(roomNumber)
	if err != nil || n < 0 {
		return 0
	}
	return n / 100
}

// RoomType classifies the room by its last two digits.
func (p *RoomPolicy) RoomType(roomNumber string) RoomType {
	n, err := strconv.Atoi(roomNumber)
	if err != nil || n < 0 {
		return RoomStandard
	}
	last := n % 100
	for _, d := range p.SuiteDigits {
		if last == d {
			return RoomSuite
		}
	}
	for _, d := range p.DeluxeDigits {
		if last == d {
			return RoomDeluxe
		}
	}
	return RoomStandard
}
