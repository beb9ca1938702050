package report

import "testing"

func TestClassifyCategory(t *testing.T) {
	cases := []struct {
		label string
		want  Category
	}{
		{"Bar Snacks", CategoryFood},
		{"Boutique", CategoryFood},
		{"Cocktail Bar", CategoryBeverage},
		{"Restaurant", CategoryFood},
		{"Bar Nourriture", CategoryFood},
		{"Boissons", CategoryBeverage},
		{"Cave à vin", CategoryBeverage},
		{"Vestiaire", CategoryUnclassified},
		{"", CategoryUnclassified},
	}
	for _, tc := range cases {
		if got := ClassifyCategory(tc.label); got != tc.want {
			t.Errorf("ClassifyCategory(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}

func TestClassifyService(t *testing.T) {
	cases := []struct {
		label string
		want  ServicePeriod
	}{
		{"Matin", ServiceMorning},
		{"Service du matin (07:00-11:00)", ServiceMorning},
		{"Midi", ServiceMidday},
		{"Déjeuner", ServiceMidday},
		{"Midday (11:00-17:00)", ServiceMidday},
		{"12:00-15:00", ServiceMidday},
		{"Soir (17:00-04:00)", ServiceEvening},
		{"Nuit", ServiceEvening},
		{"18:00-02:00", ServiceEvening},
		{"Restaurant", ServiceUnclassified},
		{"", ServiceUnclassified},
	}
	for _, tc := range cases {
		if got := ClassifyService(tc.label); got != tc.want {
			t.Errorf("ClassifyService(%q) = %s, want %s", tc.label, got, tc.want)
		}
	}
}
