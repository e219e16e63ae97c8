package report

import (
	"sort"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
)

// Output ordering is presentation-only and deliberately swappable; it
// never feeds back into classification or aggregation.

const (
	SortByAttendanceRate = "attendance_rate"
	SortByNameStrokes    = "name_strokes"
)

// strokeCounts approximates the stroke count of common leading
// characters of Chinese surnames. Characters not listed fall back to a
// code-point heuristic that only provides a stable ordering.
var strokeCounts = map[rune]int{
	'丁': 2, '王': 4, '毛': 4, '方': 4, '文': 4, '孔': 4, '牛': 4,
	'白': 5, '石': 5, '田': 5, '史': 5, '左': 5, '古': 5, '司': 5, '甘': 5,
	'朱': 6, '江': 6, '向': 6, '任': 6, '伍': 6, '池': 6, '安': 6,
	'李': 7, '吳': 7, '何': 7, '余': 7, '宋': 7, '呂': 7, '杜': 7, '沈': 7, '汪': 7,
	'巫': 7, '辛': 7, '阮': 7, '邱': 7, '吕': 7, '冷': 7, '沙': 7,
	'林': 8, '周': 8, '金': 8, '邵': 8, '武': 8, '范': 8, '卓': 8,
	'易': 8, '尚': 8, '祁': 8, '柯': 8, '柏': 8, '施': 8,
	'柳': 9, '洪': 9, '胡': 9, '姚': 9, '紀': 9, '俞': 9,
	'段': 9, '祝': 9, '侯': 9, '姜': 9, '封': 9, '查': 9,
	'孫': 10, '高': 10, '徐': 10, '馬': 10, '唐': 10, '倪': 10, '凌': 10,
	'夏': 10, '殷': 10, '秦': 10, '袁': 10, '涂': 10, '翁': 10,
	'張': 11, '陳': 11, '許': 11, '曹': 11, '梁': 11, '莊': 11, '康': 11, '郭': 11,
	'黃': 12, '曾': 12, '程': 12, '彭': 12, '傅': 12, '富': 12, '游': 12,
	'楊': 13, '葉': 13, '董': 13, '溫': 13, '詹': 13, '雷': 13, '廖': 14,
	'趙': 14, '熊': 14, '劉': 15, '蔣': 15, '蔡': 15, '鄭': 15, '蕭': 15,
	'賴': 16, '錢': 16, '盧': 16, '龍': 16, '謝': 17, '鍾': 17, '戴': 17, '鄧': 17,
	'魏': 18, '蘇': 19, '羅': 19, '龔': 22,
}

func countStrokes(char rune) int {
	if count, ok := strokeCounts[char]; ok {
		return count
	}
	if char >= 0x4E00 && char <= 0x9FFF {
		return int((char-0x4E00)%20) + 5
	}
	return 10
}

func nameStrokeKey(name string) (int, string) {
	runes := []rune(name)
	if len(runes) == 0 {
		return 0, ""
	}
	return countStrokes(runes[0]), name
}

// sortAttendance orders a list for output without mutating the input.
// Unknown sortBy values fall back to rate-descending.
func sortAttendance(list []report.MonthlyAttendance, sortBy string) []report.MonthlyAttendance {
	sorted := make([]report.MonthlyAttendance, len(list))
	copy(sorted, list)

	switch sortBy {
	case SortByNameStrokes:
		sort.SliceStable(sorted, func(i, j int) bool {
			si, ni := nameStrokeKey(sorted[i].Staff.Name)
			sj, nj := nameStrokeKey(sorted[j].Staff.Name)
			if si != sj {
				return si < sj
			}
			return ni < nj
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AttendanceRate > sorted[j].AttendanceRate
		})
	}

	return sorted
}
