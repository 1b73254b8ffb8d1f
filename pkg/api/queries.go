package api

const settingsFields = `
    targetTime
    frequency
    muscleGroups
    equipment {
      type
      threshold
    }
    workoutTypes {
      type
      modifier
    }
    specialWorkouts {
      days
      percentChance
      equipment
      objective
    }`

// GetWorkoutSettingsQuery reads the caller's settings
const GetWorkoutSettingsQuery = `query getWorkoutSettings {
  getMySettings {` + settingsFields + `
  }
}`

// UpdateSettingsMutation writes the full settings object
const UpdateSettingsMutation = `mutation updateSettings($input: SettingsInput!) {
  updateSettings(input: $input)
}`
