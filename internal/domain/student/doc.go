// Package student contains the student record domain model.
//
// This is the core of the tracker's business logic. The package defines:
//
//   - The Student entity with its validating setters
//   - Value objects: Marks, Level, Branch
//   - The syntactic validators for names and roll numbers
//
// # Architectural principles
//
// The package follows the project's domain-layer rules:
//
//  1. Only standard library dependencies plus the shared error types
//  2. Fields are never stored unvalidated - setters validate before mutating,
//     so a failed assignment leaves the record untouched
//  3. The Course collection owns records; every other holder borrows
//
// # Example
//
// Creating and mutating a student:
//
//	s, err := NewStudent(NewStudentParams{
//	    Roll:   "20CS1001",
//	    Name:   "Amit Kumar",
//	    Level:  LevelBTech,
//	    Branch: BranchCSE,
//	    Marks:  Marks{Assignment: 15, Midterm: 24, Lab: 10, Final: 45},
//	})
//	if err != nil {
//	    return err
//	}
//
//	// In-place mutation through a borrowed reference.
//	m := s.Marks()
//	m.Final = 42.5
//	s.SetMarks(m)
//
// Failed validation is reported through the closed error set in the shared
// package and can be matched with errors.Is:
//
//	if err := s.SetName("SingleName"); errors.Is(err, shared.ErrNoSecondName) {
//	    // second name missing, record unchanged
//	}
package student
