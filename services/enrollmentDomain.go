package services

import (
	"lms/models"
	courseModels "lms/models/course"
)

// CanUserEnrollCourse holds the eligibility rules: active user, enrollable
// (published) course, and instructors never enroll in their own courses.
func CanUserEnrollCourse(user *models.User, c *courseModels.Course) bool {
	if !user.IsActive {
		return false
	}
	if !c.CanEnroll() {
		return false
	}
	if user.IsInstructor() && c.InstructorID == user.ID {
		return false
	}
	return true
}

// CalculateEnrollmentPrice waives the price when an instructor previews another
// instructor's course. Everyone else pays the listed price.
func CalculateEnrollmentPrice(c *courseModels.Course, user *models.User) models.Money {
	if user.IsInstructor() && c.InstructorID != user.ID {
		return models.ZeroMoney()
	}
	return c.PriceMoney()
}
