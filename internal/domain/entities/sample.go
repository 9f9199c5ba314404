package entities

// SampleRecords returns the fixed set of demo records loaded by seeding.
// Each call builds fresh values stamped with the current time.
func SampleRecords() []Person {
	return []Person{
		NewPerson("John Smith", "LinkedIn", "https://linkedin.com/in/johnsmith", 0.95, true),
		NewPerson("John Smith", "Twitter", "https://twitter.com/johnsmith", 0.88, true),
		NewPerson("John Smith", "Facebook", "https://facebook.com/johnsmith", 0.92, true),
		NewPerson("John Smith", "Instagram", "https://instagram.com/johnsmith", 0.85, false),

		NewPerson("Sarah Johnson", "LinkedIn", "https://linkedin.com/in/sarahjohnson", 0.97, true),
		NewPerson("Sarah Johnson", "Twitter", "https://twitter.com/sarahjohnson", 0.91, true),
		NewPerson("Sarah Johnson", "Facebook", "https://facebook.com/sarahjohnson", 0.89, true),

		NewPerson("Michael Brown", "LinkedIn", "https://linkedin.com/in/michaelbrown", 0.93, true),
		NewPerson("Michael Brown", "Instagram", "https://instagram.com/michaelbrown", 0.87, false),

		NewPerson("Emily Davis", "Twitter", "https://twitter.com/emilydavis", 0.94, true),
		NewPerson("Emily Davis", "Facebook", "https://facebook.com/emilydavis", 0.90, true),
		NewPerson("Emily Davis", "Instagram", "https://instagram.com/emilydavis", 0.86, true),

		NewPerson("David Wilson", "LinkedIn", "https://linkedin.com/in/davidwilson", 0.96, true),
		NewPerson("David Wilson", "Twitter", "https://twitter.com/davidwilson", 0.89, true),

		NewPerson("Lisa Anderson", "Facebook", "https://facebook.com/lisaanderson", 0.88, true),
		NewPerson("Lisa Anderson", "Instagram", "https://instagram.com/lisaanderson", 0.84, false),

		NewPerson("Robert Taylor", "LinkedIn", "https://linkedin.com/in/roberttaylor", 0.92, true),
		NewPerson("Robert Taylor", "Twitter", "https://twitter.com/roberttaylor", 0.86, true),

		NewPerson("Jennifer Martinez", "Instagram", "https://instagram.com/jennifermartinez", 0.91, true),
		NewPerson("Jennifer Martinez", "Facebook", "https://facebook.com/jennifermartinez", 0.87, true),

		NewPerson("Christopher Garcia", "LinkedIn", "https://linkedin.com/in/christophergarcia", 0.94, true),
		NewPerson("Christopher Garcia", "Twitter", "https://twitter.com/christophergarcia", 0.90, true),

		NewPerson("Amanda Rodriguez", "Facebook", "https://facebook.com/amandarodriguez", 0.89, true),
		NewPerson("Amanda Rodriguez", "Instagram", "https://instagram.com/amandarodriguez", 0.85, false),
	}
}
