package services

// Static reference tables. Rates are nightly hotel ceilings and daily meal
// allowances by country, sourced from the organization's travel policy sheet.
// Hotel rates are in the listed currency; everything else is USD.

var hotelRates = map[string]map[string]HotelRate{
	"Afghanistan":         {"Kabul": {150, "USD"}},
	"Albania":             {"Tirana": {320, "USD"}},
	"Algeria":             {"Algiers": {210, "USD"}},
	"American Samoa":      {"Pago Pago": {210, "USD"}},
	"Argentina":           {"Buenos Aires": {420, "USD"}},
	"Armenia":             {"Yerevan": {170, "USD"}},
	"Aruba":               {"Oranjestad": {210, "USD"}},
	"Australia":           {"Brisbane": {210, "USD"}, "Canberra": {280, "USD"}, "Melbourne": {280, "USD"}, "Sydney": {280, "USD"}, "Other Cities": {210, "USD"}},
	"Azerbaijan":          {"Baku": {200, "USD"}, "Other Cities": {100, "USD"}},
	"Bahamas":             {"Nassau": {210, "USD"}},
	"Bahrain":             {"Manama": {210, "USD"}},
	"Bangladesh":          {"Dhaka": {250, "USD"}, "Other Cities": {200, "USD"}},
	"Barbados":            {"Bridgetown": {320, "USD"}},
	"Belarus":             {"Minsk": {210, "USD"}},
	"Benin":               {"Porto-Novo": {210, "USD"}},
	"Bermuda":             {"Hamilton": {210, "USD"}},
	"Bhutan":              {"Thimphu": {310, "USD"}, "Paro": {310, "USD"}, "Other Cities": {250, "USD"}},
	"Bolivia":             {"Sucre": {210, "USD"}},
	"Bosnia and Herzegovina": {"Sarajevo": {210, "USD"}},
	"Botswana":            {"Gaborone": {210, "USD"}},
	"Brazil":              {"Brasilia": {320, "USD"}},
	"Brunei Darussalam":   {"Bandar Seri Begawan": {320, "USD"}},
	"Burkina Faso":        {"Ouagadougou": {210, "USD"}},
	"Burundi":             {"Gitega": {210, "USD"}},
	"Cambodia":            {"Phnom Penh": {240, "USD"}, "Siem Reap": {240, "USD"}, "Sihanoukville": {160, "USD"}, "Other Cities": {100, "USD"}},
	"Cameroon":            {"Yaounde": {320, "USD"}},
	"Canada":              {"Ottawa": {340, "USD"}, "Toronto": {340, "USD"}, "Vancouver": {340, "USD"}, "Montreal": {240, "USD"}, "Other Cities": {240, "USD"}},
	"Cape Verde":          {"Praia": {320, "USD"}},
	"Cayman Islands":      {"George Town": {210, "USD"}},
	"Chile":               {"Santiago": {210, "USD"}},
	"China, People's Rep. of": {"Beijing": {1710, "CNY"}, "Shanghai": {2310, "CNY"}, "Other Cities": {1190, "CNY"}},
	"Colombia":            {"Bogota": {320, "USD"}},
	"Congo, The Democratic Republic of the": {"Kinshasa": {210, "USD"}},
	"Cook Islands":        {"Avarua": {210, "USD"}},
	"Costa Rica":          {"San Jose": {320, "USD"}},
	"Cote d'Ivoire":       {"Yamoussoukro": {210, "USD"}},
	"Cuba":                {"Havana": {210, "USD"}},
	"Dominican Republic":  {"Santo Domingo": {210, "USD"}},
	"Ecuador":             {"Quito": {320, "USD"}},
	"Egypt":               {"Cairo": {210, "USD"}},
	"Equatorial Guinea":   {"Malabo": {320, "USD"}},
	"Ethiopia":            {"Addis Ababa": {370, "USD"}},
	"Europe (except Türkiye)": {"All Cities": {460, "USD"}},
	"Fiji":                {"Suva": {220, "USD"}, "Nadi": {280, "USD"}, "Other Cities": {130, "USD"}},
	"French Polynesia":    {"Papeete": {320, "USD"}},
	"Georgia":             {"Tbilisi": {310, "USD"}, "Other Cities": {220, "USD"}},
	"Ghana":               {"Accra": {210, "USD"}},
	"Gibraltar":           {"Gibraltar": {320, "USD"}},
	"Guam":                {"Hagatna": {240, "USD"}},
	"Guatemala":           {"Guatemala City": {210, "USD"}},
	"Guinea":              {"Conakry": {210, "USD"}},
	"Honduras":            {"Tegucigalpa": {210, "USD"}},
	"Hong Kong, China":    {"Hong Kong": {480, "USD"}},
	"India":               {"New Delhi": {18850, "INR"}, "Bangalore": {18850, "INR"}, "Goa": {18850, "INR"}, "Gurgaon": {18850, "INR"}, "Mumbai": {18850, "INR"}, "Srinigar": {18850, "INR"}, "Ahmedabad": {12970, "INR"}, "Bhopal": {12970, "INR"}, "Bhubaneswar": {12970, "INR"}, "Chennai": {12970, "INR"}, "Guwahati": {12970, "INR"}, "Hyderabad": {12970, "INR"}, "Jaipur": {12970, "INR"}, "Kolkata": {12970, "INR"}, "Patna": {12970, "INR"}, "Pune": {12970, "INR"}, "Shimla": {12970, "INR"}, "Other Cities": {8260, "INR"}},
	"Indonesia":           {"Jakarta": {250, "USD"}, "Denpasar (Bali)": {210, "USD"}, "Other Cities": {150, "USD"}},
	"Iran, Islamic Republic of": {"Tehran": {320, "USD"}},
	"Iraq":                {"Baghdad": {210, "USD"}},
	"Israel":              {"Jerusalem": {210, "USD"}},
	"Jamaica":             {"Kingston": {210, "USD"}},
	"Japan":               {"Tokyo": {380, "USD"}, "Other Cities": {310, "USD"}},
	"Jordan":              {"Amman": {210, "USD"}},
	"Kazakhstan":          {"Astana": {310, "USD"}, "Almaty": {310, "USD"}, "Other Cities": {310, "USD"}},
	"Kenya":               {"Nairobi": {320, "USD"}},
	"Kiribati":            {"Tarawa": {120, "USD"}, "Other Cities": {110, "USD"}},
	"Korea":               {"Seoul": {310, "USD"}},
	"Kuwait":              {"Kuwait City": {320, "USD"}},
	"Kyrgyz Republic":     {"Bishkek": {270, "USD"}, "Other Cities": {100, "USD"}},
	"Lao, PDR":            {"Vientiane": {160, "USD"}},
	"Lebanon":             {"Beirut": {210, "USD"}},
	"Lesotho":             {"Maseru": {210, "USD"}},
	"Libyan Arab Jamahiriya": {"Tripoli": {210, "USD"}},
	"Macau":               {"Macau": {400, "USD"}},
	"Macedonia, The Former Yugoslav Repu": {"Skopje": {210, "USD"}},
	"Madagascar":          {"Antananarivo": {210, "USD"}},
	"Malawi":              {"Lilongwe": {210, "USD"}},
	"Malaysia":            {"Kuala Lumpur": {180, "USD"}},
	"Maldives":            {"Male": {380, "USD"}, "Other Cities": {290, "USD"}},
	"Mali":                {"Bamako": {320, "USD"}},
	"Marshall Islands":    {"Majuro": {160, "USD"}},
	"Mauritius":           {"Port Louis": {210, "USD"}},
	"Mexico":              {"Mexico City": {320, "USD"}},
	"Micronesia, Fed States of": {"Palikir": {170, "USD"}},
	"Moldova, Republic of": {"Chisinau": {210, "USD"}},
	"Monaco":              {"Monaco": {210, "USD"}},
	"Mongolia":            {"Ulaanbaatar": {250, "USD"}, "Other Cities": {120, "USD"}},
	"Montenegro":          {"Podgorica": {210, "USD"}},
	"Morocco":             {"Rabat": {330, "USD"}},
	"Myanmar":             {"Nay Pyi Taw": {150, "USD"}, "Mandalay": {250, "USD"}, "Yangon": {250, "USD"}, "Other Cities": {150, "USD"}},
	"Namibia":             {"Windhoek": {210, "USD"}},
	"Nauru":               {"Yaren": {320, "USD"}},
	"Nepal":               {"Kathmandu": {200, "USD"}, "Pokhara": {150, "USD"}, "Bhairahawa": {150, "USD"}, "Other Cities": {200, "USD"}},
	"New Caledonia":       {"Noumea": {190, "USD"}},
	"New Zealand":         {"Wellington": {250, "USD"}},
	"Nicaragua":           {"Managua": {210, "USD"}},
	"Nigeria":             {"Abuja": {320, "USD"}},
	"Niue":                {"Alofi": {110, "USD"}},
	"Northern Mariana Islands": {"Saipan": {210, "USD"}},
	"Oman":                {"Muscat": {210, "USD"}},
	"Pakistan":            {"Islamabad": {350, "USD"}, "Karachi": {220, "USD"}, "Lahore": {220, "USD"}, "Other Cities": {180, "USD"}},
	"Palau":               {"Ngerulmud": {330, "USD"}},
	"Panama":              {"Panama City": {210, "USD"}},
	"Papua New Guinea":    {"Port Moresby": {370, "USD"}},
	"Paraguay":            {"Asuncion": {320, "USD"}},
	"Peru":                {"Lima": {210, "USD"}},
	"Philippines":         {"Manila": {6900, "PHP"}},
	"Puerto Rico":         {"San Juan": {320, "USD"}},
	"Qatar":               {"Doha": {290, "USD"}},
	"Russian Federation":  {"Moscow": {420, "USD"}},
	"Rwanda":              {"Kigali": {210, "USD"}},
	"Saint Lucia":         {"Castries": {210, "USD"}},
	"Samoa":               {"Apia": {240, "USD"}},
	"Saudi Arabia":        {"Riyadh": {270, "USD"}},
	"Senegal":             {"Dakar": {210, "USD"}},
	"Serbia":              {"Belgrade": {210, "USD"}},
	"Seychelles":          {"Victoria": {210, "USD"}},
	"Singapore":           {"Singapore": {320, "USD"}},
	"Solomon Islands":     {"Honiara": {330, "USD"}},
	"South Africa":        {"Pretoria": {210, "USD"}},
	"Sri Lanka":           {"Colombo": {200, "USD"}, "Other Cities": {150, "USD"}},
	"Sudan":               {"Khartoum": {370, "USD"}},
	"Syrian Arab Republic": {"Damascus": {210, "USD"}},
	"Taipei, China":       {"Taipei": {250, "USD"}},
	"Tajikistan":          {"Dushanbe": {270, "USD"}, "Other Cities": {180, "USD"}},
	"Tanzania, United Republic of": {"Dodoma": {210, "USD"}},
	"Thailand":            {"Bangkok": {210, "USD"}},
	"Timor-Leste":         {"Dili": {180, "USD"}},
	"Tonga":               {"Nuku'alofa": {150, "USD"}},
	"Tunisia":             {"Tunis": {210, "USD"}},
	"Türkiye":             {"Ankara": {260, "USD"}},
	"Turkmenistan":        {"Ashgabat": {270, "USD"}, "Other Cities": {150, "USD"}},
	"Tuvalu":              {"Funafuti": {150, "USD"}},
	"Uganda":              {"Kampala": {440, "USD"}},
	"Ukraine":             {"Kyiv": {420, "USD"}},
	"United Arab Emirates": {"Abu Dhabi": {320, "USD"}},
	"United States":       {"Washington D.C.": {470, "USD"}},
	"Uruguay":             {"Montevideo": {210, "USD"}},
	"Uzbekistan":          {"Tashkent": {210, "USD"}, "Other Cities": {160, "USD"}},
	"Vanuatu":             {"Port Vila": {320, "USD"}},
	"Venezuela, Bolivarian Republic of": {"Caracas": {210, "USD"}},
	"Viet Nam":            {"Hanoi": {250, "USD"}, "Ho Chi Minh": {250, "USD"}, "Other Cities": {160, "USD"}},
	"Yemen":               {"Sana'a": {210, "USD"}},
	"Zambia":              {"Lusaka": {210, "USD"}},
	"Zimbabwe":            {"Harare": {210, "USD"}},
}

var dmaRates = map[string]float64{
	"Afghanistan": 120, "Albania": 120, "Algeria": 120, "American Samoa": 140,
	"Argentina": 140, "Armenia": 100, "Aruba": 140, "Australia": 200,
	"Azerbaijan": 120, "Bahamas": 140, "Bahrain": 120, "Bangladesh": 120,
	"Barbados": 140, "Belarus": 120, "Belize": 140, "Benin": 120,
	"Bermuda": 140, "Bhutan": 100, "Bolivia": 140, "Bosnia and Herzegovina": 120,
	"Botswana": 120, "Brazil": 140, "Brunei Darussalam": 120, "Burkina Faso": 120,
	"Burundi": 120, "Cambodia": 100, "Cameroon": 120, "Canada": 140,
	"Cape Verde": 120, "Cayman Islands": 140, "Chile": 140,
	"China, People's Rep. of": 140, "Colombia": 140,
	"Congo, The Democratic Republic of the": 120, "Cook Islands": 100,
	"Costa Rica": 140, "Cote d'Ivoire": 120, "Cuba": 140,
	"Dominican Republic": 140, "Ecuador": 140, "Egypt": 120, "El Salvador": 140,
	"Equatorial Guinea": 120, "Ethiopia": 120, "Europe (except Türkiye)": 180,
	"Fiji": 120, "French Guiana": 140, "French Polynesia": 120, "Georgia": 140,
	"Ghana": 120, "Gibraltar": 120, "Greenland": 140, "Guam": 140,
	"Guatemala": 140, "Guinea": 120, "Guyana": 140, "Honduras": 140,
	"Hong Kong, China": 160, "India": 140, "Indonesia": 120,
	"Iran, Islamic Republic of": 120, "Iraq": 120, "Israel": 120, "Jamaica": 140,
	"Japan": 200, "Jordan": 120, "Kazakhstan": 160, "Kenya": 120,
	"Kiribati": 100, "Korea": 140, "Kuwait": 120, "Kyrgyz Republic": 120,
	"Lao, PDR": 100, "Lebanon": 120, "Lesotho": 120,
	"Libyan Arab Jamahiriya": 120, "Macedonia, The Former Yugoslav Repu": 120,
	"Madagascar": 120, "Malawi": 120, "Malaysia": 100, "Maldives": 100,
	"Mali": 120, "Marshall Islands": 100, "Mauritius": 120, "Mexico": 140,
	"Micronesia, Fed States of": 100, "Moldova, Republic of": 120, "Monaco": 120,
	"Mongolia": 100, "Montenegro": 120, "Morocco": 120, "Myanmar": 100,
	"Namibia": 120, "Nauru": 100, "Nepal": 100, "New Caledonia": 120,
	"New Zealand": 180, "Nicaragua": 140, "Nigeria": 120, "Niue": 100,
	"Northern Mariana Islands": 140, "Oman": 120, "Pakistan": 100, "Palau": 120,
	"Panama": 140, "Papua New Guinea": 160, "Paraguay": 140, "Peru": 140,
	"Philippines": 80, "Puerto Rico": 140, "Qatar": 120,
	"Russian Federation": 120, "Rwanda": 120, "Saint Lucia": 140, "Samoa": 100,
	"Saudi Arabia": 120, "Senegal": 120, "Serbia": 120, "Seychelles": 120,
	"Singapore": 180, "Solomon Islands": 120, "South Africa": 120,
	"Sri Lanka": 120, "Sudan": 120, "Suriname": 140, "Syrian Arab Republic": 120,
	"Taipei, China": 160, "Tajikistan": 100, "Tanzania, United Republic of": 120,
	"Thailand": 120, "Timor-Leste": 100, "Tonga": 120, "Tunisia": 120,
	"Türkiye": 180, "Turkmenistan": 120, "Tuvalu": 100, "Uganda": 120,
	"Ukraine": 120, "United Arab Emirates": 120, "United States": 140,
	"Uruguay": 140, "Uzbekistan": 100, "Vanuatu": 160,
	"Venezuela, Bolivarian Republic of": 140, "Viet Nam": 100, "Yemen": 120,
	"Zambia": 120, "Zimbabwe": 120,
}

var capitals = map[string]string{
	"Afghanistan": "Kabul", "Albania": "Tirana", "Algeria": "Algiers",
	"American Samoa": "Pago Pago", "Argentina": "Buenos Aires",
	"Armenia": "Yerevan", "Aruba": "Oranjestad", "Australia": "Canberra",
	"Azerbaijan": "Baku", "Bahamas": "Nassau", "Bahrain": "Manama",
	"Bangladesh": "Dhaka", "Barbados": "Bridgetown", "Belarus": "Minsk",
	"Benin": "Porto-Novo", "Bermuda": "Hamilton", "Bhutan": "Thimphu",
	"Bolivia": "Sucre", "Bosnia and Herzegovina": "Sarajevo",
	"Botswana": "Gaborone", "Brazil": "Brasilia",
	"Brunei Darussalam": "Bandar Seri Begawan", "Burkina Faso": "Ouagadougou",
	"Burundi": "Gitega", "Cambodia": "Phnom Penh", "Cameroon": "Yaounde",
	"Canada": "Ottawa", "Cape Verde": "Praia", "Cayman Islands": "George Town",
	"Chile": "Santiago", "China, People's Rep. of": "Beijing",
	"Colombia": "Bogota", "Congo, The Democratic Republic of the": "Kinshasa",
	"Cook Islands": "Avarua", "Costa Rica": "San Jose",
	"Cote d'Ivoire": "Yamoussoukro", "Cuba": "Havana",
	"Dominican Republic": "Santo Domingo", "Ecuador": "Quito", "Egypt": "Cairo",
	"Equatorial Guinea": "Malabo", "Ethiopia": "Addis Ababa",
	"Europe (except Türkiye)": "Brussels", "Fiji": "Suva",
	"French Polynesia": "Papeete", "Georgia": "Tbilisi", "Ghana": "Accra",
	"Gibraltar": "Gibraltar", "Guam": "Hagatna", "Guatemala": "Guatemala City",
	"Guinea": "Conakry", "Honduras": "Tegucigalpa",
	"Hong Kong, China": "Hong Kong", "India": "New Delhi",
	"Indonesia": "Jakarta", "Iran, Islamic Republic of": "Tehran",
	"Iraq": "Baghdad", "Israel": "Jerusalem", "Jamaica": "Kingston",
	"Japan": "Tokyo", "Jordan": "Amman", "Kazakhstan": "Astana",
	"Kenya": "Nairobi", "Kiribati": "Tarawa", "Korea": "Seoul",
	"Kuwait": "Kuwait City", "Kyrgyz Republic": "Bishkek",
	"Lao, PDR": "Vientiane", "Lebanon": "Beirut", "Lesotho": "Maseru",
	"Libyan Arab Jamahiriya": "Tripoli", "Macau": "Macau",
	"Macedonia, The Former Yugoslav Repu": "Skopje",
	"Madagascar": "Antananarivo", "Malawi": "Lilongwe",
	"Malaysia": "Kuala Lumpur", "Maldives": "Male", "Mali": "Bamako",
	"Marshall Islands": "Majuro", "Mauritius": "Port Louis",
	"Mexico": "Mexico City", "Micronesia, Fed States of": "Palikir",
	"Moldova, Republic of": "Chisinau", "Monaco": "Monaco",
	"Mongolia": "Ulaanbaatar", "Montenegro": "Podgorica", "Morocco": "Rabat",
	"Myanmar": "Naypyidaw", "Namibia": "Windhoek", "Nauru": "Yaren",
	"Nepal": "Kathmandu", "New Caledonia": "Noumea",
	"New Zealand": "Wellington", "Nicaragua": "Managua", "Nigeria": "Abuja",
	"Niue": "Alofi", "Northern Mariana Islands": "Saipan", "Oman": "Muscat",
	"Pakistan": "Islamabad", "Palau": "Ngerulmud", "Panama": "Panama City",
	"Papua New Guinea": "Port Moresby", "Paraguay": "Asuncion", "Peru": "Lima",
	"Philippines": "Manila", "Puerto Rico": "San Juan", "Qatar": "Doha",
	"Russian Federation": "Moscow", "Rwanda": "Kigali",
	"Saint Lucia": "Castries", "Samoa": "Apia", "Saudi Arabia": "Riyadh",
	"Senegal": "Dakar", "Serbia": "Belgrade", "Seychelles": "Victoria",
	"Singapore": "Singapore", "Solomon Islands": "Honiara",
	"South Africa": "Pretoria", "Sri Lanka": "Colombo", "Sudan": "Khartoum",
	"Syrian Arab Republic": "Damascus", "Taipei, China": "Taipei",
	"Tajikistan": "Dushanbe", "Tanzania, United Republic of": "Dodoma",
	"Thailand": "Bangkok", "Timor-Leste": "Dili", "Tonga": "Nuku'alofa",
	"Tunisia": "Tunis", "Türkiye": "Ankara", "Turkmenistan": "Ashgabat",
	"Tuvalu": "Funafuti", "Uganda": "Kampala", "Ukraine": "Kyiv",
	"United Arab Emirates": "Abu Dhabi", "United States": "Washington D.C.",
	"Uruguay": "Montevideo", "Uzbekistan": "Tashkent", "Vanuatu": "Port Vila",
	"Venezuela, Bolivarian Republic of": "Caracas", "Viet Nam": "Hanoi",
	"Yemen": "Sana'a", "Zambia": "Lusaka", "Zimbabwe": "Harare",
}
