/*
Copyright 2025 Moneymapper Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import "sort"

// Taxonomy is the fixed personal-finance classification scheme: 16 primary
// categories, each owning a set of subcategories (104 in total). Every
// subcategory belongs to exactly one primary category, and mapping entries
// are validated against this table at load time.
var Taxonomy = map[string][]string{
	"BANK_FEES": {
		"BANK_FEES_ATM_FEES",
		"BANK_FEES_FOREIGN_TRANSACTION_FEES",
		"BANK_FEES_INSUFFICIENT_FUNDS",
		"BANK_FEES_INTEREST_CHARGE",
		"BANK_FEES_OVERDRAFT_FEES",
		"BANK_FEES_OTHER_BANK_FEES",
	},
	"ENTERTAINMENT": {
		"ENTERTAINMENT_CASINOS_AND_GAMBLING",
		"ENTERTAINMENT_MUSIC_AND_AUDIO",
		"ENTERTAINMENT_SPORTING_EVENTS_AMUSEMENT_PARKS_AND_MUSEUMS",
		"ENTERTAINMENT_TV_AND_MOVIES",
		"ENTERTAINMENT_VIDEO_GAMES",
		"ENTERTAINMENT_OTHER_ENTERTAINMENT",
	},
	"FOOD_AND_DRINK": {
		"FOOD_AND_DRINK_BEER_WINE_AND_LIQUOR",
		"FOOD_AND_DRINK_COFFEE",
		"FOOD_AND_DRINK_FAST_FOOD",
		"FOOD_AND_DRINK_GROCERIES",
		"FOOD_AND_DRINK_RESTAURANT",
		"FOOD_AND_DRINK_VENDING_MACHINES",
		"FOOD_AND_DRINK_OTHER_FOOD_AND_DRINK",
	},
	"GENERAL_MERCHANDISE": {
		"GENERAL_MERCHANDISE_BOOKSTORES_AND_NEWSSTANDS",
		"GENERAL_MERCHANDISE_CLOTHING_AND_ACCESSORIES",
		"GENERAL_MERCHANDISE_CONVENIENCE_STORES",
		"GENERAL_MERCHANDISE_DEPARTMENT_STORES",
		"GENERAL_MERCHANDISE_DISCOUNT_STORES",
		"GENERAL_MERCHANDISE_ELECTRONICS",
		"GENERAL_MERCHANDISE_GIFTS_AND_NOVELTIES",
		"GENERAL_MERCHANDISE_OFFICE_SUPPLIES",
		"GENERAL_MERCHANDISE_ONLINE_MARKETPLACES",
		"GENERAL_MERCHANDISE_PET_SUPPLIES",
		"GENERAL_MERCHANDISE_SPORTING_GOODS",
		"GENERAL_MERCHANDISE_SUPERSTORES",
		"GENERAL_MERCHANDISE_TOBACCO_AND_VAPE",
		"GENERAL_MERCHANDISE_OTHER_GENERAL_MERCHANDISE",
	},
	"GENERAL_SERVICES": {
		"GENERAL_SERVICES_ACCOUNTING_AND_FINANCIAL_PLANNING",
		"GENERAL_SERVICES_AUTOMOTIVE",
		"GENERAL_SERVICES_CHILDCARE",
		"GENERAL_SERVICES_CONSULTING_AND_LEGAL",
		"GENERAL_SERVICES_EDUCATION",
		"GENERAL_SERVICES_INSURANCE",
		"GENERAL_SERVICES_POSTAGE_AND_SHIPPING",
		"GENERAL_SERVICES_STORAGE",
		"GENERAL_SERVICES_OTHER_GENERAL_SERVICES",
	},
	"GOVERNMENT_AND_NON_PROFIT": {
		"GOVERNMENT_AND_NON_PROFIT_DONATIONS",
		"GOVERNMENT_AND_NON_PROFIT_GOVERNMENT_DEPARTMENTS_AND_AGENCIES",
		"GOVERNMENT_AND_NON_PROFIT_TAX_PAYMENT",
		"GOVERNMENT_AND_NON_PROFIT_OTHER_GOVERNMENT_AND_NON_PROFIT",
	},
	"HOME_IMPROVEMENT": {
		"HOME_IMPROVEMENT_FURNITURE",
		"HOME_IMPROVEMENT_HARDWARE",
		"HOME_IMPROVEMENT_REPAIR_AND_MAINTENANCE",
		"HOME_IMPROVEMENT_SECURITY",
		"HOME_IMPROVEMENT_OTHER_HOME_IMPROVEMENT",
	},
	"INCOME": {
		"INCOME_DIVIDENDS",
		"INCOME_INTEREST_EARNED",
		"INCOME_RETIREMENT_PENSION",
		"INCOME_TAX_REFUND",
		"INCOME_UNEMPLOYMENT",
		"INCOME_WAGES",
		"INCOME_OTHER_INCOME",
	},
	"LOAN_PAYMENTS": {
		"LOAN_PAYMENTS_CAR_PAYMENT",
		"LOAN_PAYMENTS_CREDIT_CARD_PAYMENT",
		"LOAN_PAYMENTS_MORTGAGE_PAYMENT",
		"LOAN_PAYMENTS_PERSONAL_LOAN_PAYMENT",
		"LOAN_PAYMENTS_STUDENT_LOAN_PAYMENT",
		"LOAN_PAYMENTS_OTHER_PAYMENT",
	},
	"MEDICAL": {
		"MEDICAL_DENTAL_CARE",
		"MEDICAL_EYE_CARE",
		"MEDICAL_NURSING_CARE",
		"MEDICAL_PHARMACIES_AND_SUPPLEMENTS",
		"MEDICAL_PRIMARY_CARE",
		"MEDICAL_VETERINARY_SERVICES",
		"MEDICAL_OTHER_MEDICAL",
	},
	"PERSONAL_CARE": {
		"PERSONAL_CARE_GYMS_AND_FITNESS_CENTERS",
		"PERSONAL_CARE_HAIR_AND_BEAUTY",
		"PERSONAL_CARE_LAUNDRY_AND_DRY_CLEANING",
		"PERSONAL_CARE_OTHER_PERSONAL_CARE",
	},
	"RENT_AND_UTILITIES": {
		"RENT_AND_UTILITIES_GAS_AND_ELECTRICITY",
		"RENT_AND_UTILITIES_INTERNET_AND_CABLE",
		"RENT_AND_UTILITIES_RENT",
		"RENT_AND_UTILITIES_SEWAGE_AND_WASTE_MANAGEMENT",
		"RENT_AND_UTILITIES_TELEPHONE",
		"RENT_AND_UTILITIES_WATER",
		"RENT_AND_UTILITIES_OTHER_UTILITIES",
	},
	"TRANSFER_IN": {
		"TRANSFER_IN_CASH_ADVANCES_AND_LOANS",
		"TRANSFER_IN_DEPOSIT",
		"TRANSFER_IN_INVESTMENT_AND_RETIREMENT_FUNDS",
		"TRANSFER_IN_SAVINGS",
		"TRANSFER_IN_ACCOUNT_TRANSFER",
		"TRANSFER_IN_OTHER_TRANSFER_IN",
	},
	"TRANSFER_OUT": {
		"TRANSFER_OUT_INVESTMENT_AND_RETIREMENT_FUNDS",
		"TRANSFER_OUT_SAVINGS",
		"TRANSFER_OUT_WITHDRAWAL",
		"TRANSFER_OUT_ACCOUNT_TRANSFER",
		"TRANSFER_OUT_OTHER_TRANSFER_OUT",
	},
	"TRANSPORTATION": {
		"TRANSPORTATION_BIKES_AND_SCOOTERS",
		"TRANSPORTATION_GAS",
		"TRANSPORTATION_PARKING",
		"TRANSPORTATION_PUBLIC_TRANSIT",
		"TRANSPORTATION_TAXIS_AND_RIDE_SHARES",
		"TRANSPORTATION_TOLLS",
		"TRANSPORTATION_OTHER_TRANSPORTATION",
	},
	"TRAVEL": {
		"TRAVEL_FLIGHTS",
		"TRAVEL_LODGING",
		"TRAVEL_RENTAL_CARS",
		"TRAVEL_OTHER_TRAVEL",
	},
}

// ValidCategory reports whether name is one of the primary categories.
func ValidCategory(name string) bool {
	_, ok := Taxonomy[name]
	return ok
}

// SubcategoryOf returns the primary category owning the given subcategory,
// or "" when the subcategory is unknown.
func SubcategoryOf(subcategory string) string {
	for category, subs := range Taxonomy {
		for _, s := range subs {
			if s == subcategory {
				return category
			}
		}
	}
	return ""
}

// ValidPair reports whether subcategory is subordinate to category.
func ValidPair(category, subcategory string) bool {
	subs, ok := Taxonomy[category]
	if !ok {
		return false
	}
	for _, s := range subs {
		if s == subcategory {
			return true
		}
	}
	return false
}

// Categories returns the primary category names in lexical order.
func Categories() []string {
	names := make([]string, 0, len(Taxonomy))
	for name := range Taxonomy {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
