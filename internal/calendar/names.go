package calendar

import "strings"

// GregorianMonths are the Indonesian month names, January first.
var GregorianMonths = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// HijriMonths are the Latin-script Hijri month names, Muharram first.
var HijriMonths = []string{
	"Muharram", "Shafar", "Rabiul Awal", "Rabiul Akhir",
	"Jumadil Awal", "Jumadil Akhir", "Rajab", "Sya'ban",
	"Ramadhan", "Syawal", "Dzulqa'dah", "Dzulhijjah",
}

// HijriMonthsArabic are the Arabic Hijri month names, Muharram first.
var HijriMonthsArabic = []string{
	"محرم", "صفر", "ربيع الأول", "ربيع الآخر",
	"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// GregorianMonthName returns the Indonesian name of month 1..12.
func GregorianMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return GregorianMonths[month-1]
}

// HijriMonthName returns the Latin name of Hijri month 1..12.
func HijriMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return HijriMonths[month-1]
}

var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// ArabicDigits rewrites the ASCII digits of s as Arabic-Indic digits.
func ArabicDigits(s string) string {
	return arabicDigits.Replace(s)
}
